package graphql

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/repository"
)

// AppSchema exposes the read/write surface over the same storage the REST
// handlers use. Resolvers call the repositories directly: the REST layer's
// dedup-on-create and guest-identity handling do not apply here.
type AppSchema struct {
	Schema gql.Schema
}

func NewAppSchema(users repository.UserRepository, proses repository.ProseRepository) (*AppSchema, error) {
	timestampType := gql.NewScalar(gql.ScalarConfig{
		Name:        "Timestamp",
		Description: "A millisecond precision UNIX timestamp",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case int64:
				return v
			case *int64:
				if v == nil {
					return nil
				}
				return *v
			default:
				return nil
			}
		},
		ParseValue: func(value interface{}) interface{} {
			switch v := value.(type) {
			case int64:
				return v
			case int:
				return int64(v)
			case float64:
				return int64(v)
			case string:
				parsed, err := strconv.ParseInt(v, 10, 64)
				if err != nil {
					return nil
				}
				return parsed
			default:
				return nil
			}
		},
		ParseLiteral: func(valueAST ast.Value) interface{} {
			if v, ok := valueAST.(*ast.IntValue); ok {
				if parsed, err := strconv.ParseInt(v.Value, 10, 64); err == nil {
					return parsed
				}
			}
			return nil
		},
	})

	userType := gql.NewObject(gql.ObjectConfig{
		Name:        "User",
		Description: "A user object",
		Fields: gql.Fields{
			"id":        &gql.Field{Type: gql.Int},
			"firstname": &gql.Field{Type: gql.String},
			"lastname":  &gql.Field{Type: gql.String},
			"email": &gql.Field{
				Type:        gql.String,
				Description: "The email of the user",
			},
		},
	})

	proseType := gql.NewObject(gql.ObjectConfig{
		Name:        "GuerillaProse",
		Description: "A guerilla prose - a combination of a picture and a 333 character long text",
		Fields: gql.Fields{
			"id": &gql.Field{Type: gql.Int},
			"text": &gql.Field{
				Type:        gql.String,
				Description: "The text of the guerilla prose",
			},
			"imageUrl": &gql.Field{
				Type:        gql.String,
				Description: "The image of the guerilla prose",
			},
			"label":  &gql.Field{Type: gql.String},
			"userId": &gql.Field{Type: gql.Int},
			"date":   &gql.Field{Type: timestampType},
		},
	})

	userInputType := gql.NewInputObject(gql.InputObjectConfig{
		Name: "UserInput",
		Fields: gql.InputObjectConfigFieldMap{
			"firstname": &gql.InputObjectFieldConfig{Type: gql.String},
			"lastname":  &gql.InputObjectFieldConfig{Type: gql.String},
			"email":     &gql.InputObjectFieldConfig{Type: gql.String},
		},
	})

	proseInputType := gql.NewInputObject(gql.InputObjectConfig{
		Name: "GuerillaProseInput",
		Fields: gql.InputObjectConfigFieldMap{
			"text":     &gql.InputObjectFieldConfig{Type: gql.String},
			"imageUrl": &gql.InputObjectFieldConfig{Type: gql.String},
			"label":    &gql.InputObjectFieldConfig{Type: gql.String},
			"userId":   &gql.InputObjectFieldConfig{Type: gql.Int},
		},
	})

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"guerillaproses": &gql.Field{
				Type:        gql.NewList(proseType),
				Description: "Returns all available guerilla prose",
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return proses.List(p.Context)
				},
			},
			"guerillaprosesForLabel": &gql.Field{
				Type:        gql.NewList(proseType),
				Description: "Returns all available guerilla prose for one label",
				Args: gql.FieldConfigArgument{
					"label": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					label, _ := p.Args["label"].(string)
					return proses.ListByLabel(p.Context, label)
				},
			},
			"guerillaprosesForUser": &gql.Field{
				Type:        gql.NewList(proseType),
				Description: "Returns all available guerilla prose for one user",
				Args: gql.FieldConfigArgument{
					"userId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					userID, _ := p.Args["userId"].(int)
					return proses.ListByUser(p.Context, int64(userID))
				},
			},
			"guerillaprose": &gql.Field{
				Type:        proseType,
				Description: "Returns the guerilla prose specified by the id",
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					prose, err := proses.FindByID(p.Context, int64(id))
					if err != nil {
						if errors.Is(err, sql.ErrNoRows) {
							return nil, fmt.Errorf("guerilla prose with id: %d does not exist", id)
						}
						return nil, err
					}
					return prose, nil
				},
			},
			"user": &gql.Field{
				Type:        userType,
				Description: "Returns the user specified by the id",
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					user, err := users.FindByID(p.Context, int64(id))
					if err != nil {
						if errors.Is(err, sql.ErrNoRows) {
							return nil, fmt.Errorf("User with id: %d does not exist", id)
						}
						return nil, err
					}
					return user, nil
				},
			},
		},
	})

	mutationType := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createUser": &gql.Field{
				Type:        userType,
				Description: "Adds a new user to the database",
				Args: gql.FieldConfigArgument{
					"user": &gql.ArgumentConfig{Type: gql.NewNonNull(userInputType)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["user"].(map[string]interface{})
					user := model.User{
						Firstname: stringArg(input, "firstname"),
						Lastname:  stringArg(input, "lastname"),
						Email:     stringArg(input, "email"),
					}

					id, err := users.Create(p.Context, &user)
					if err != nil {
						return nil, err
					}

					user.ID = id
					return &user, nil
				},
			},
			"createGuerillaProse": &gql.Field{
				Type:        proseType,
				Description: "Adds a new guerilla prose to the database",
				Args: gql.FieldConfigArgument{
					"guerillaProse": &gql.ArgumentConfig{Type: gql.NewNonNull(proseInputType)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["guerillaProse"].(map[string]interface{})
					prose := model.GuerillaProse{
						Text:     stringArg(input, "text"),
						ImageURL: stringArg(input, "imageUrl"),
						Label:    stringArg(input, "label"),
						UserID:   intArg(input, "userId"),
					}

					id, err := proses.Create(p.Context, &prose)
					if err != nil {
						return nil, err
					}

					prose.ID = id
					return &prose, nil
				},
			},
		},
	})

	schema, err := gql.NewSchema(gql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return nil, err
	}

	return &AppSchema{Schema: schema}, nil
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]interface{}, key string) int64 {
	switch v := args[key].(type) {
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
