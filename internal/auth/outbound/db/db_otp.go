package db

import (
	"context"

	"github.com/shandysiswandi/gatekit/internal/auth/entity"
	"github.com/shandysiswandi/gatekit/internal/pkg/goerror"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *DB) decodeOTP(raw bson.M) *entity.OTPRecord {
	f := s.fields.OTP

	return &entity.OTPRecord{
		ID:        documentID(raw),
		UserID:    stringField(raw, f.User),
		Code:      stringField(raw, f.Code),
		ExpiresAt: timeField(raw, f.Expires),
	}
}

// UpsertOTP replaces the user's outstanding code, creating the record when
// none exists. Keying the upsert by the owning user keeps at most one live
// record per user.
func (s *DB) UpsertOTP(ctx context.Context, in entity.UpsertOTP) (rec *entity.OTPRecord, err error) {
	ctx, span := s.startSpan(ctx, "UpsertOTP")
	defer func() { s.endSpan(span, err) }()

	f := s.fields.OTP
	filter := bson.M{f.User: in.UserID}
	update := bson.M{"$set": bson.M{
		f.User:    in.UserID,
		f.Code:    in.Code,
		f.Expires: in.ExpiresAt,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var raw bson.M
	if err = s.mapError(s.otps.FindOneAndUpdate(ctx, filter, update, opts).Decode(&raw)); err != nil {
		return nil, err
	}

	return s.decodeOTP(raw), nil
}

// GetOTPByID returns the OTP record with the given identifier.
func (s *DB) GetOTPByID(ctx context.Context, id string) (rec *entity.OTPRecord, err error) {
	ctx, span := s.startSpan(ctx, "GetOTPByID")
	defer func() { s.endSpan(span, err) }()

	oid, oidErr := primitive.ObjectIDFromHex(id)
	if oidErr != nil {
		// A malformed identifier can never match a stored record.
		return nil, goerror.ErrNotFound
	}

	var raw bson.M
	if err = s.mapError(s.otps.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)); err != nil {
		return nil, err
	}

	return s.decodeOTP(raw), nil
}

// DeleteOTPByID removes a redeemed OTP record.
func (s *DB) DeleteOTPByID(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteOTPByID")
	defer func() { s.endSpan(span, err) }()

	oid, oidErr := primitive.ObjectIDFromHex(id)
	if oidErr != nil {
		return goerror.ErrNotFound
	}

	err = s.mapError(s.otps.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err())
	return err
}
