package infra

import (
	"net/http"

	"github.com/m-mizutani/zipdata/pkg/domain/interfaces"
)

type Clients struct {
	httpClient HTTPClient
	storage    interfaces.ObjectStorage
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

// New returns clients with http.DefaultClient, which has no timeout. Object storage is nil unless WithObjectStorage is given.
func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) ObjectStorage() interfaces.ObjectStorage {
	return x.storage
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithObjectStorage(client interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.storage = client
	}
}
