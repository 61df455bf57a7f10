// Package graph serves the course review data over GraphQL. Each domain contributes its
// own query and mutation fields; NewSchema merges them into the root types.
package graph

import (
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/services"
)

type schemaBuilder struct {
	svc *services.Services

	department *graphql.Object
	course     *graphql.Object
	professor  *graphql.Object
	review     *graphql.Object

	departmentConnection *graphql.Object
	courseConnection     *graphql.Object
	professorConnection  *graphql.Object
	reviewConnection     *graphql.Object
}

// NewSchema builds the executable schema over the services
func NewSchema(svc *services.Services) (graphql.Schema, error) {
	b := &schemaBuilder{svc: svc}
	b.department = b.departmentType()
	b.course = b.courseType()
	b.professor = b.professorType()
	b.review = b.reviewType()
	b.departmentConnection = newConnectionType("Department", b.department)
	b.courseConnection = newConnectionType("Course", b.course)
	b.professorConnection = newConnectionType("Professor", b.professor)
	b.reviewConnection = newConnectionType("Review", b.review)

	query, err := merge(b.departmentQueries(), b.courseQueries(), b.professorQueries(), b.reviewQueries())
	if err != nil {
		return graphql.Schema{}, err
	}
	mutation, err := merge(b.reviewMutations())
	if err != nil {
		return graphql.Schema{}, err
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: query}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutation}),
	})
}

// merge joins per-domain field sets, refusing duplicate names
func merge(sets ...graphql.Fields) (graphql.Fields, error) {
	out := graphql.Fields{}
	for _, set := range sets {
		for name, field := range set {
			if _, dup := out[name]; dup {
				return nil, fmt.Errorf("graphql field %q defined twice", name)
			}
			out[name] = field
		}
	}
	return out, nil
}

func timestampFields(created, updated func(graphql.ResolveParams) time.Time) graphql.Fields {
	return graphql.Fields{
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return created(p), nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return updated(p), nil
			},
		},
	}
}

// floatOrNil keeps "no reviews" distinct from a zero average
func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func stringOrNil(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
