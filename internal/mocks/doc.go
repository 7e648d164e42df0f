// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across packages. Each mock
// exposes function fields (SomethingFn) overriding the default behavior,
// plus call counters where tests commonly assert on them.
//
// Usage:
//
//	import "github.com/ChenReuven/next-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    sessions := &mocks.MockSessionManager{
//	        VerifyFn: func(ctx context.Context, token string) (*auth.Session, error) {
//	            return nil, auth.ErrInvalidToken
//	        },
//	    }
//	    // Use the mock in your test...
//	}
package mocks
