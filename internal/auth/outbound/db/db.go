package db

import (
	"context"
	"errors"
	"time"

	"github.com/shandysiswandi/gatekit/internal/auth/entity"
	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
	"github.com/shandysiswandi/gatekit/internal/pkg/instrument"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	userCollection = "users"
	otpCollection  = "otps"
)

// DB is the MongoDB-backed store for users and OTP records. All reads and
// writes go through the configured field map, so documents are decoded from
// raw bson rather than struct tags.
type DB struct {
	users  *mongo.Collection
	otps   *mongo.Collection
	fields entity.FieldMap
	ins    instrument.Instrumentation
}

func NewDB(mdb *mongo.Database, fields entity.FieldMap, ins instrument.Instrumentation) *DB {
	return &DB{
		users:  mdb.Collection(userCollection),
		otps:   mdb.Collection(otpCollection),
		fields: fields,
		ins:    ins,
	}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return goerror.ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func documentID(raw bson.M) string {
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if s, ok := raw["_id"].(string); ok {
		return s
	}
	return ""
}

func stringField(raw bson.M, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func timeField(raw bson.M, key string) time.Time {
	switch v := raw[key].(type) {
	case primitive.DateTime:
		return v.Time()
	case time.Time:
		return v
	default:
		return time.Time{}
	}
}
