package auth

import "testing"

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "" || hash == "hunter2" {
		t.Fatalf("unusable hash %q", hash)
	}

	if !hasher.Verify("hunter2", hash) {
		t.Error("Verify rejected the correct password")
	}
	if hasher.Verify("hunter3", hash) {
		t.Error("Verify accepted a wrong password")
	}
	if hasher.Verify("hunter2", "not-a-hash") {
		t.Error("Verify accepted a malformed hash")
	}
}
