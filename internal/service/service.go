// Package service composes validation, ownership resolution and uniqueness
// checks into the end-to-end flow of each operation. Every operation is a
// linear pipeline that stops at the first failure; nothing is written unless
// every check has passed.
package service

import (
	"time"

	"growbit/internal/store"
)

type Service struct {
	store       store.Store
	tokenSecret []byte
	tokenTTL    time.Duration
}

func New(st store.Store, tokenSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		store:       st,
		tokenSecret: []byte(tokenSecret),
		tokenTTL:    tokenTTL,
	}
}

// TokenSecret exposes the signing key for the transport layer's bearer-token
// middleware.
func (s *Service) TokenSecret() []byte {
	return s.tokenSecret
}
