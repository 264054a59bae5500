// Package errxlambda turns errx errors into API Gateway proxy responses.
package errxlambda

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/aws/aws-lambda-go/events"

	"github.com/Conversia-AI/craftable-convx/errx"
	"github.com/Conversia-AI/craftable-convx/logx"
	"github.com/Conversia-AI/craftable-convx/validatex"
)

var (
	LambdaErrors = errx.NewRegistry("LAMBDA")

	ErrInvalidRequestBody = LambdaErrors.Register("INVALID_REQUEST_BODY", errx.TypeBadRequest, http.StatusBadRequest, "Failed to parse request body")
	ErrResponseMarshal    = LambdaErrors.Register("RESPONSE_MARSHAL", errx.TypeInternal, http.StatusInternalServerError, "Failed to marshal response")
)

var fallbackBody = `{"error":{"code":"INTERNAL_ERROR","type":"INTERNAL","message":"An unexpected error occurred"}}`

// LambdaHandlerFunc represents a Lambda handler function that can return an Error
type LambdaHandlerFunc func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ErrorMiddleware wraps a Lambda handler so that returned errors become JSON responses
func ErrorMiddleware(handler LambdaHandlerFunc) LambdaHandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		response, err := handler(ctx, event)
		if err != nil {
			return failure(event, err), nil
		}
		return response, nil
	}
}

// ToLambdaResponse converts an errx.Error to an API Gateway proxy response
func ToLambdaResponse(e *errx.Error) events.APIGatewayProxyResponse {
	body, err := json.Marshal(map[string]any{"error": e.Body()})
	if err != nil {
		logx.Error("errxlambda: marshal error response: %v", err)
		body = []byte(fallbackBody)
	}
	return jsonResponse(e.Status(), body)
}

// JSONHandlerFunc represents a Lambda handler that works with JSON request/response
type JSONHandlerFunc[TRequest, TResponse any] func(ctx context.Context, req TRequest) (TResponse, error)

// JSONErrorMiddleware decodes the body into TRequest, validates struct
// requests with validatex, and encodes the handler's result.
func JSONErrorMiddleware[TRequest, TResponse any](handler JSONHandlerFunc[TRequest, TResponse]) LambdaHandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		var req TRequest
		if event.Body != "" {
			if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
				return failure(event, LambdaErrors.NewWithCause(ErrInvalidRequestBody, err)), nil
			}
		}

		if isStruct(req) {
			if xerr := validatex.ValidateWithErrx(req); xerr != nil {
				return failure(event, xerr), nil
			}
		}

		response, err := handler(ctx, req)
		if err != nil {
			return failure(event, err), nil
		}

		body, err := json.Marshal(response)
		if err != nil {
			return failure(event, LambdaErrors.NewWithCause(ErrResponseMarshal, err)), nil
		}
		return jsonResponse(http.StatusOK, body), nil
	}
}

func failure(event events.APIGatewayProxyRequest, err error) events.APIGatewayProxyResponse {
	xerr := errx.From(err)
	entry := logx.WithFields(logx.Fields{
		"method": event.HTTPMethod,
		"path":   event.Path,
		"code":   xerr.Code,
	})
	if xerr.Status() >= http.StatusInternalServerError {
		entry.Errorf("lambda handler failed: %v", err)
	} else {
		entry.Debugf("lambda request rejected: %v", err)
	}
	return ToLambdaResponse(xerr)
}

func jsonResponse(status int, body []byte) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

// isStruct reports whether v is a struct or a non-nil pointer to one
func isStruct(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}
