package auth

import (
	"testing"
	"time"
)

func TestRecordFailedLoginLocksAccount(t *testing.T) {
	u := NewUser("ann@example.com", "Ann", "hash")

	for i := 0; i < 4; i++ {
		u.RecordFailedLogin(5, 15*time.Minute)
	}
	if u.IsLocked() {
		t.Fatal("account locked before reaching max attempts")
	}

	u.RecordFailedLogin(5, 15*time.Minute)
	if !u.IsLocked() {
		t.Fatal("account should be locked after max attempts")
	}
	if err := u.CanLogin(); err == nil {
		t.Error("CanLogin should fail for locked account")
	}

	u.RecordSuccessfulLogin()
	if u.IsLocked() {
		t.Error("successful login should clear lock")
	}
	if u.FailedLoginAttempts != 0 {
		t.Errorf("FailedLoginAttempts = %d, want 0", u.FailedLoginAttempts)
	}
	if u.LastLoginAt == nil {
		t.Error("LastLoginAt should be set")
	}
}

func TestMembershipAccessors(t *testing.T) {
	u := NewUser("ann@example.com", "Ann", "hash")
	u.Memberships = []Membership{
		{VenueID: "venue-a", Role: RoleOwner},
		{VenueID: "venue-b", Role: RoleManager},
		{VenueID: "venue-c", Role: RoleManager},
	}

	ids := u.VenueIDs()
	if len(ids) != 3 || ids[0] != "venue-a" || ids[2] != "venue-c" {
		t.Errorf("VenueIDs = %v", ids)
	}

	roles := u.Roles()
	if len(roles) != 2 {
		t.Errorf("Roles = %v, want distinct [owner manager]", roles)
	}

	if got := u.RoleIn("venue-b"); got != RoleManager {
		t.Errorf("RoleIn(venue-b) = %q", got)
	}
	if got := u.RoleIn("venue-x"); got != "" {
		t.Errorf("RoleIn(venue-x) = %q, want empty", got)
	}
}

func TestCanLoginDisabledAccount(t *testing.T) {
	u := NewUser("ann@example.com", "Ann", "hash")
	u.IsActive = false

	if err := u.CanLogin(); err == nil {
		t.Error("CanLogin should fail for disabled account")
	}
}
