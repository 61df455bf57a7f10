package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/services"
)

func (b *schemaBuilder) reviewType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Review](p).ID, nil
					},
				},
				"rating": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Review](p).Rating, nil
					},
				},
				"workload": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Review](p).Workload, nil
					},
				},
				"difficulty": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Review](p).Difficulty, nil
					},
				},
				"comment": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return stringOrNil(source[*models.Review](p).Comment), nil
					},
				},
				// The list join only carries a partial course, so load the full one
				"course": &graphql.Field{
					Type: graphql.NewNonNull(b.course),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return b.svc.CourseService.GetCourseByID(p.Context, source[*models.Review](p).CourseID)
					},
				},
				"professor": &graphql.Field{
					Type: b.professor,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						review := source[*models.Review](p)
						if review.ProfessorID == nil {
							return nil, nil
						}
						professor, err := b.svc.ProfessorService.GetProfessor(p.Context, *review.ProfessorID, "")
						if err != nil || professor == nil {
							return nil, err
						}
						return professor, nil
					},
				},
			}
			for name, f := range timestampFields(
				func(p graphql.ResolveParams) time.Time { return source[*models.Review](p).CreatedAt },
				func(p graphql.ResolveParams) time.Time { return source[*models.Review](p).UpdatedAt },
			) {
				fields[name] = f
			}
			return fields
		}),
	})
}

func (b *schemaBuilder) reviewQueries() graphql.Fields {
	return graphql.Fields{
		"reviews": &graphql.Field{
			Type: b.reviewConnection,
			Args: connectionArgs(graphql.FieldConfigArgument{
				"course_Code":  &graphql.ArgumentConfig{Type: graphql.String},
				"professor_Id": &graphql.ArgumentConfig{Type: graphql.Int},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				opts, err := listOptions(p)
				if err != nil {
					return nil, err
				}
				filter := repositories.ReviewFilter{
					CourseCode:  stringArg(p, "course_Code"),
					ProfessorID: int64(intArg(p, "professor_Id")),
				}
				reviews, total, err := b.svc.ReviewService.ListReviews(p.Context, filter, opts)
				if err != nil {
					return nil, err
				}
				return newConnection(reviews, opts, total), nil
			},
		},
	}
}

var createReviewInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateReviewInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"courseCode":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"professorId": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"rating":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"workload":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"difficulty":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"comment":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func (b *schemaBuilder) createReviewPayload() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateReviewPayload",
		Fields: graphql.Fields{
			"success": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return source[*services.CreateReviewResult](p).Success, nil
				},
			},
			"errors": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return source[*services.CreateReviewResult](p).Errors, nil
				},
			},
			"review": &graphql.Field{
				Type: b.review,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if review := source[*services.CreateReviewResult](p).Review; review != nil {
						return review, nil
					}
					return nil, nil
				},
			},
		},
	})
}

// toCreateReviewInput reads the mutation input object. Absent optional fields stay zero.
func toCreateReviewInput(raw map[string]interface{}) services.CreateReviewInput {
	input := services.CreateReviewInput{}
	input.CourseCode, _ = raw["courseCode"].(string)
	if id, ok := raw["professorId"].(int); ok {
		input.ProfessorID = int64(id)
	}
	input.Rating, _ = raw["rating"].(int)
	input.Workload, _ = raw["workload"].(int)
	input.Difficulty, _ = raw["difficulty"].(int)
	if comment, ok := raw["comment"].(string); ok {
		input.Comment = &comment
	}
	return input
}

func (b *schemaBuilder) reviewMutations() graphql.Fields {
	return graphql.Fields{
		"createReview": &graphql.Field{
			Type: b.createReviewPayload(),
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createReviewInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				raw, _ := p.Args["input"].(map[string]interface{})
				return b.svc.ReviewService.CreateReview(p.Context, toCreateReviewInput(raw))
			},
		},
	}
}
