package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const stateCollection = "widget_state"

// FirestoreStore implements Store with one Firestore document per namespace.
// Each key is a top-level string field of that document.
type FirestoreStore struct {
	client    *firestore.Client
	namespace string
}

// NewFirestoreStore creates a Firestore-backed store for namespace.
func NewFirestoreStore(client *firestore.Client, namespace string) *FirestoreStore {
	return &FirestoreStore{client: client, namespace: namespace}
}

func (s *FirestoreStore) doc() *firestore.DocumentRef {
	return s.client.Collection(stateCollection).Doc(s.namespace)
}

func (s *FirestoreStore) Get(ctx context.Context, key string) (string, bool, error) {
	snap, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, unavailable("get", key, err)
	}

	raw, ok := snap.Data()[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: field %q is %T", ErrMalformed, key, raw)
	}
	return value, true, nil
}

func (s *FirestoreStore) Set(ctx context.Context, key, value string) error {
	_, err := s.doc().Set(ctx, map[string]any{key: value}, firestore.MergeAll)
	if err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (s *FirestoreStore) Remove(ctx context.Context, key string) error {
	_, err := s.doc().Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{key}, Value: firestore.Delete},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return unavailable("remove", key, err)
	}
	return nil
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
