// Package mocks provides mock implementations for testing the console services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockSessionStore(ctrl)
//	store.EXPECT().Get(gomock.Any(), "sid").Return(sess, nil)
package mocks

// Generate mock for SessionStore interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/nexacrm/crm-console/internal/ports SessionStore

// Generate mock for CredentialDecoder interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_decoder_mock.go github.com/nexacrm/crm-console/internal/ports CredentialDecoder

// Generate mock for AuthGateway interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_gateway_mock.go github.com/nexacrm/crm-console/internal/ports AuthGateway

// Generate mock for AdminDirectory interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=admin_directory_mock.go github.com/nexacrm/crm-console/internal/ports AdminDirectory
