package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/app/stats"
)

func (b *schemaBuilder) courseAverage(pick func(stats.Averages) *float64) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		avg, err := b.svc.CourseService.CourseAverages(p.Context, source[*models.Course](p).ID)
		if err != nil {
			return nil, err
		}
		return floatOrNil(pick(avg)), nil
	}
}

func (b *schemaBuilder) courseType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Course",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			fields := graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Course](p).ID, nil
					},
				},
				"code": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Course](p).Code, nil
					},
				},
				"title": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Course](p).Title, nil
					},
				},
				"description": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return stringOrNil(source[*models.Course](p).Description), nil
					},
				},
				"department": &graphql.Field{
					Type: b.department,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						course := source[*models.Course](p)
						if course.Department != nil {
							return course.Department, nil
						}
						department, err := b.svc.DepartmentService.GetDepartmentByID(p.Context, course.DepartmentID)
						if err != nil || department == nil {
							return nil, err
						}
						return department, nil
					},
				},
				"avgRating": &graphql.Field{
					Type:    graphql.Float,
					Resolve: b.courseAverage(func(a stats.Averages) *float64 { return a.Rating }),
				},
				"avgWorkload": &graphql.Field{
					Type:    graphql.Float,
					Resolve: b.courseAverage(func(a stats.Averages) *float64 { return a.Workload }),
				},
				"avgDifficulty": &graphql.Field{
					Type:    graphql.Float,
					Resolve: b.courseAverage(func(a stats.Averages) *float64 { return a.Difficulty }),
				},
				"reviewCount": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						avg, err := b.svc.CourseService.CourseAverages(p.Context, source[*models.Course](p).ID)
						return avg.Count, err
					},
				},
				"reviews": &graphql.Field{
					Type: graphql.NewList(b.review),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return b.svc.CourseService.CourseReviews(p.Context, source[*models.Course](p).ID)
					},
				},
			}
			for name, f := range timestampFields(
				func(p graphql.ResolveParams) time.Time { return source[*models.Course](p).CreatedAt },
				func(p graphql.ResolveParams) time.Time { return source[*models.Course](p).UpdatedAt },
			) {
				fields[name] = f
			}
			return fields
		}),
	})
}

func (b *schemaBuilder) courseQueries() graphql.Fields {
	return graphql.Fields{
		"course": &graphql.Field{
			Type: b.course,
			Args: graphql.FieldConfigArgument{
				"code": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				course, err := b.svc.CourseService.GetCourseByCode(p.Context, stringArg(p, "code"))
				if err != nil || course == nil {
					return nil, err
				}
				return course, nil
			},
		},
		"courses": &graphql.Field{
			Type: b.courseConnection,
			Args: connectionArgs(graphql.FieldConfigArgument{
				"code":            &graphql.ArgumentConfig{Type: graphql.String},
				"code_Icontains":  &graphql.ArgumentConfig{Type: graphql.String},
				"title_Icontains": &graphql.ArgumentConfig{Type: graphql.String},
				"department_Code": &graphql.ArgumentConfig{Type: graphql.String},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				opts, err := listOptions(p)
				if err != nil {
					return nil, err
				}
				filter := repositories.CourseFilter{
					Code:           stringArg(p, "code"),
					CodeContains:   stringArg(p, "code_Icontains"),
					TitleContains:  stringArg(p, "title_Icontains"),
					DepartmentCode: stringArg(p, "department_Code"),
				}
				courses, total, err := b.svc.CourseService.ListCourses(p.Context, filter, opts)
				if err != nil {
					return nil, err
				}
				return newConnection(courses, opts, total), nil
			},
		},
	}
}
