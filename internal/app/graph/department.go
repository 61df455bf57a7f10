package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/models"
	"github.com/huskyden/backend/internal/app/repositories"
)

func (b *schemaBuilder) departmentType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Department",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Department](p).ID, nil
					},
				},
				"code": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Department](p).Code, nil
					},
				},
				"name": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return source[*models.Department](p).Name, nil
					},
				},
				"courses": &graphql.Field{
					Type: graphql.NewList(b.course),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						filter := repositories.CourseFilter{DepartmentID: source[*models.Department](p).ID}
						courses, _, err := b.svc.CourseService.ListCourses(p.Context, filter, repositories.ListOptions{})
						return courses, err
					},
				},
				"professors": &graphql.Field{
					Type: graphql.NewList(b.professor),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						filter := repositories.ProfessorFilter{DepartmentID: source[*models.Department](p).ID}
						professors, _, err := b.svc.ProfessorService.ListProfessors(p.Context, filter, repositories.ListOptions{})
						return professors, err
					},
				},
			}
		}),
	})
}

func (b *schemaBuilder) departmentQueries() graphql.Fields {
	return graphql.Fields{
		"department": &graphql.Field{
			Type: b.department,
			Args: graphql.FieldConfigArgument{
				"code": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				department, err := b.svc.DepartmentService.GetDepartmentByCode(p.Context, stringArg(p, "code"))
				if err != nil || department == nil {
					return nil, err
				}
				return department, nil
			},
		},
		"departments": &graphql.Field{
			Type: b.departmentConnection,
			Args: connectionArgs(nil),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				opts, err := listOptions(p)
				if err != nil {
					return nil, err
				}
				departments, total, err := b.svc.DepartmentService.ListDepartments(p.Context, repositories.DepartmentFilter{}, opts)
				if err != nil {
					return nil, err
				}
				return newConnection(departments, opts, total), nil
			},
		},
	}
}
