package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
)

func (b *schemaBuilder) professorType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Professor",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Professor](p).ID, nil
					},
				},
				"name": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Professor](p).Name, nil
					},
				},
				"slug": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Professor](p).Slug, nil
					},
				},
				"department": &graphql.Field{
					Type: b.department,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						professor := source[*models.Professor](p)
						if professor.Department != nil {
							return professor.Department, nil
						}
						if professor.DepartmentID == nil {
							return nil, nil
						}
						department, err := b.svc.DepartmentService.GetDepartmentByID(p.Context, *professor.DepartmentID)
						if err != nil || department == nil {
							return nil, err
						}
						return department, nil
					},
				},
				"avgRating": &graphql.Field{
					Type: graphql.Float,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						avg, err := b.svc.ProfessorService.ProfessorAverages(p.Context, source[*models.Professor](p).ID)
						if err != nil {
							return nil, err
						}
						return floatOrNil(avg.Rating), nil
					},
				},
				"reviewCount": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						avg, err := b.svc.ProfessorService.ProfessorAverages(p.Context, source[*models.Professor](p).ID)
						return avg.Count, err
					},
				},
				"reviews": &graphql.Field{
					Type: graphql.NewList(b.review),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return b.svc.ProfessorService.ProfessorReviews(p.Context, source[*models.Professor](p).ID)
					},
				},
			}
			for name, f := range timestampFields(
				func(p graphql.ResolveParams) time.Time { return source[*models.Professor](p).CreatedAt },
				func(p graphql.ResolveParams) time.Time { return source[*models.Professor](p).UpdatedAt },
			) {
				fields[name] = f
			}
			return fields
		}),
	})
}

func (b *schemaBuilder) professorQueries() graphql.Fields {
	return graphql.Fields{
		"professor": &graphql.Field{
			Type: b.professor,
			Args: graphql.FieldConfigArgument{
				"id":   &graphql.ArgumentConfig{Type: graphql.Int},
				"slug": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				professor, err := b.svc.ProfessorService.GetProfessor(p.Context, int64(intArg(p, "id")), stringArg(p, "slug"))
				if err != nil || professor == nil {
					return nil, err
				}
				return professor, nil
			},
		},
		"professors": &graphql.Field{
			Type: b.professorConnection,
			Args: connectionArgs(graphql.FieldConfigArgument{
				"name_Icontains":  &graphql.ArgumentConfig{Type: graphql.String},
				"department_Code": &graphql.ArgumentConfig{Type: graphql.String},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				opts, err := listOptions(p)
				if err != nil {
					return nil, err
				}
				filter := repositories.ProfessorFilter{
					NameContains:   stringArg(p, "name_Icontains"),
					DepartmentCode: stringArg(p, "department_Code"),
				}
				professors, total, err := b.svc.ProfessorService.ListProfessors(p.Context, filter, opts)
				if err != nil {
					return nil, err
				}
				return newConnection(professors, opts, total), nil
			},
		},
	}
}
