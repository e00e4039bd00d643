package otel

import (
	"context"

	"github.com/blueputty01/swiftnotes/pkg/auth"

	"go.opentelemetry.io/otel/attribute"
)

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}

func Int(key string, val int) KeyValue {
	return attribute.Int(key, val)
}

func EndUserAttrs(ctx context.Context) []KeyValue {
	var attrs []KeyValue

	if user, ok := ctx.Value(auth.UserContextKey).(string); ok && user != "" {
		attrs = append(attrs, String("enduser.id", user))
	}

	return attrs
}
