package apiclient

import (
	"context"
	"net/http"
	"strconv"
)

// Resource is one REST collection: GET/POST on the collection path,
// PUT/DELETE on path+id.
type Resource[T any] struct {
	client *Client
	path   string
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Resource[T]) Create(ctx context.Context, payload interface{}) error {
	return r.client.do(ctx, http.MethodPost, r.path, payload, nil)
}

func (r *Resource[T]) Update(ctx context.Context, id int, payload interface{}) error {
	return r.client.do(ctx, http.MethodPut, r.itemPath(id), payload, nil)
}

func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *Resource[T]) itemPath(id int) string {
	return r.path + strconv.Itoa(id)
}
