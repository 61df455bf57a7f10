package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/huskyden/backend/internal/app/repositories"
	"github.com/huskyden/backend/internal/pkg/helpers"
)

type pageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool // stays false: only last/before paging sets it, and lists page forward only
	StartCursor     string
	EndCursor       string
}

type edge struct {
	Cursor string
	Node   interface{}
}

type connection struct {
	Edges      []edge
	PageInfo   pageInfo
	TotalCount int64
}

func cursorOrNil(c string) interface{} {
	if c == "" {
		return nil
	}
	return c
}

var pageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PageInfo",
	Fields: graphql.Fields{
		"hasNextPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return source[pageInfo](p).HasNextPage, nil
			},
		},
		"hasPreviousPage": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return source[pageInfo](p).HasPreviousPage, nil
			},
		},
		"startCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return cursorOrNil(source[pageInfo](p).StartCursor), nil
			},
		},
		"endCursor": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return cursorOrNil(source[pageInfo](p).EndCursor), nil
			},
		},
	},
})

// newConnectionType builds the <Name>Connection and <Name>Edge types around a node type
func newConnectionType(name string, node *graphql.Object) *graphql.Object {
	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Edge",
		Fields: graphql.Fields{
			"cursor": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return source[edge](p).Cursor, nil
				},
			},
			"node": &graphql.Field{
				Type: node,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return source[edge](p).Node, nil
				},
			},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: name + "Connection",
		Fields: graphql.Fields{
			"edges": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(edgeType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return source[connection](p).Edges, nil
				},
			},
			"pageInfo": &graphql.Field{
				Type: graphql.NewNonNull(pageInfoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return source[connection](p).PageInfo, nil
				},
			},
			"totalCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(source[connection](p).TotalCount), nil
				},
			},
		},
	})
}

// connectionArgs adds first/after to a field's filter arguments
func connectionArgs(filters graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"first": &graphql.ArgumentConfig{Type: graphql.Int},
		"after": &graphql.ArgumentConfig{Type: graphql.String},
	}
	for name, arg := range filters {
		args[name] = arg
	}
	return args
}

// listOptions reads first/after into a store window
func listOptions(p graphql.ResolveParams) (repositories.ListOptions, error) {
	first, _ := p.Args["first"].(int)
	after, _ := p.Args["after"].(string)
	offset, limit, err := helpers.ConnectionWindow(first, after)
	if err != nil {
		return repositories.ListOptions{}, err
	}
	return repositories.ListOptions{Offset: offset, Limit: limit}, nil
}

// newConnection wraps one page of nodes starting at opts.Offset
func newConnection[T any](nodes []T, opts repositories.ListOptions, total int64) connection {
	conn := connection{Edges: make([]edge, 0, len(nodes)), TotalCount: total}
	for i, n := range nodes {
		conn.Edges = append(conn.Edges, edge{Cursor: helpers.OffsetToCursor(int(opts.Offset) + i), Node: n})
	}
	if len(conn.Edges) > 0 {
		conn.PageInfo.StartCursor = conn.Edges[0].Cursor
		conn.PageInfo.EndCursor = conn.Edges[len(conn.Edges)-1].Cursor
	}
	conn.PageInfo.HasNextPage = int64(opts.Offset)+int64(len(nodes)) < total
	return conn
}

// source extracts the parent value of a resolver
func source[T any](p graphql.ResolveParams) T {
	v, _ := p.Source.(T)
	return v
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func intArg(p graphql.ResolveParams, name string) int {
	v, _ := p.Args[name].(int)
	return v
}
