package db

import (
	"context"

	"github.com/shandysiswandi/gatekit/internal/auth/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *DB) decodeUser(raw bson.M) *entity.User {
	f := s.fields.User

	return &entity.User{
		ID:       documentID(raw),
		Name:     stringField(raw, f.Name),
		Email:    stringField(raw, f.Email),
		Phone:    stringField(raw, f.Phone),
		Password: stringField(raw, f.Password),
	}
}

// FindUserByAttributes returns a user whose name, email, or phone matches any
// of the given values. Used as the registration collision probe.
func (s *DB) FindUserByAttributes(ctx context.Context, name, email, phone string) (u *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "FindUserByAttributes")
	defer func() { s.endSpan(span, err) }()

	f := s.fields.User
	filter := bson.M{"$or": bson.A{
		bson.M{f.Name: name},
		bson.M{f.Email: email},
		bson.M{f.Phone: phone},
	}}

	var raw bson.M
	if err = s.mapError(s.users.FindOne(ctx, filter).Decode(&raw)); err != nil {
		return nil, err
	}

	return s.decodeUser(raw), nil
}

// FindUserByAnyIdentifier returns a user whose email, phone, or name equals
// identifier. When the value matches multiple documents the store decides
// which one wins.
func (s *DB) FindUserByAnyIdentifier(ctx context.Context, identifier string) (u *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "FindUserByAnyIdentifier")
	defer func() { s.endSpan(span, err) }()

	f := s.fields.User
	filter := bson.M{"$or": bson.A{
		bson.M{f.Email: identifier},
		bson.M{f.Phone: identifier},
		bson.M{f.Name: identifier},
	}}

	var raw bson.M
	if err = s.mapError(s.users.FindOne(ctx, filter).Decode(&raw)); err != nil {
		return nil, err
	}

	return s.decodeUser(raw), nil
}

// CreateUser inserts a new user document using the configured field names.
func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (u *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	f := s.fields.User
	doc := bson.M{
		f.Name:     in.Name,
		f.Email:    in.Email,
		f.Phone:    in.Phone,
		f.Password: in.Password,
	}

	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		return nil, s.mapError(err)
	}

	id := ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		id = oid.Hex()
	}

	return &entity.User{
		ID:       id,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
	}, nil
}
