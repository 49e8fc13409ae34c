package core

import "context"

// SentinelVerifier accepts a single fixed password for every identity. It is
// the demo stand-in for real credential verification: the identity source
// carries no credentials at all, so "is this the sentinel" is the entire
// check. Swap in a real CredentialVerifier to change that without touching
// the session store.
type SentinelVerifier struct {
	Password string
}

var _ CredentialVerifier = SentinelVerifier{}

func (v SentinelVerifier) Verify(_ context.Context, _ *Identity, password string) (bool, error) {
	return password != "" && password == v.Password, nil
}
