package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// OpenAPI is the loaded and validated API contract.
type OpenAPI struct {
	doc    *openapi3.T
	router routers.Router
	json   []byte
}

// LoadOpenAPI parses the embedded contract and validates it. The document has
// no servers section, so routes match on path alone and every host is accepted.
func LoadOpenAPI(ctx context.Context) (*OpenAPI, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &OpenAPI{doc: doc, router: router, json: data}, nil
}

// YAML returns the contract as shipped.
func (o *OpenAPI) YAML() []byte {
	return openapiYAML
}

// ReadDoc implements swag.Swagger so echo-swagger can serve the contract.
func (o *OpenAPI) ReadDoc() string {
	return string(o.json)
}

// RegisterSwagger makes the contract the default swag document.
func (o *OpenAPI) RegisterSwagger() {
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, o)
	}
}

// Validator checks /api requests against the contract before they reach a
// handler. Paths the contract does not describe are left to the echo router.
func (o *OpenAPI) Validator() echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/") {
				return next(c)
			}

			route, pathParams, err := o.router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					return echo.ErrMethodNotAllowed
				}
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(c)
		}
	}
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return "invalid parameter " + reqErr.Parameter.Name + ": " + reqErr.Reason
		}
		if reqErr.RequestBody != nil {
			return "invalid request body: " + errText(reqErr.Err, reqErr.Reason)
		}
	}
	return err.Error()
}

func errText(err error, fallback string) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr.Reason
	}
	if err != nil {
		return err.Error()
	}
	return fallback
}
