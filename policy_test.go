package goAuthClient

import (
	"context"
	"net/http"
	"testing"

	"github.com/MrEthical07/goAuthClient/credstore"
)

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role         Role
		isAdmin      bool
		isSuperAdmin bool
	}{
		{RoleUser, false, false},
		{RoleAdmin, true, false},
		{RoleSuperAdmin, true, true},
		{Role(""), false, false},
		{Role("MODERATOR"), false, false},
		{Role("admin"), false, false}, // case-sensitive, fails closed
	}
	for _, tt := range tests {
		if got := tt.role.IsAdmin(); got != tt.isAdmin {
			t.Errorf("Role(%q).IsAdmin() = %v, want %v", tt.role, got, tt.isAdmin)
		}
		if got := tt.role.IsSuperAdmin(); got != tt.isSuperAdmin {
			t.Errorf("Role(%q).IsSuperAdmin() = %v, want %v", tt.role, got, tt.isSuperAdmin)
		}
	}
}

func TestSuperAdminImpliesAdmin(t *testing.T) {
	if RoleSuperAdmin.IsSuperAdmin() && !RoleSuperAdmin.IsAdmin() {
		t.Fatal("super admin capability must imply admin capability")
	}
}

func TestSessionCapabilitiesRequireToken(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler())
	ctx := context.Background()

	// Role slot populated but no token: capability checks fail closed.
	seedSession(t, client, credstore.Session{Username: "ghost", Role: "SUPER_ADMIN"})
	if client.IsAdmin(ctx) || client.IsSuperAdmin(ctx) {
		t.Fatal("capabilities must be absent without a token")
	}

	seedSession(t, client, credstore.Session{Token: "tok", Username: "root", Role: "SUPER_ADMIN"})
	if !client.IsAdmin(ctx) || !client.IsSuperAdmin(ctx) {
		t.Fatal("token plus role must grant capabilities")
	}
}

func TestGuardAdmin(t *testing.T) {
	tests := []struct {
		name    string
		session credstore.Session
		want    GateDecision
	}{
		{
			name:    "plain user redirected to dashboard",
			session: credstore.Session{Token: "tok", Username: "u", Role: "USER"},
			want:    GateDecision{Redirect: RouteDashboard},
		},
		{
			name: "logged out redirected to dashboard",
			want: GateDecision{Redirect: RouteDashboard},
		},
		{
			name:    "admin allowed",
			session: credstore.Session{Token: "tok", Username: "a", Role: "ADMIN"},
			want:    GateDecision{Allowed: true},
		},
		{
			name:    "super admin allowed",
			session: credstore.Session{Token: "tok", Username: "s", Role: "SUPER_ADMIN"},
			want:    GateDecision{Allowed: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.NotFoundHandler())
			seedSession(t, client, tt.session)
			if got := client.GuardAdmin(context.Background()); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestGuardSuperAdminDeniesAdminToAdminPanel(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler())
	seedSession(t, client, credstore.Session{Token: "tok", Username: "a", Role: "ADMIN"})

	got := client.GuardSuperAdmin(context.Background())
	want := GateDecision{Redirect: RouteAdmin}
	if got != want {
		t.Fatalf("admin denied super gate must land on %q, got %+v", RouteAdmin, got)
	}
}

func TestGateDenialDoesNotConsultWatchers(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler())
	seedSession(t, client, credstore.Session{Token: "tok", Username: "u", Role: "USER"})

	var after int
	cancelU := client.WatchUser(func(string) { after++ })
	defer cancelU()
	cancelR := client.WatchRole(func(Role) { after++ })
	defer cancelR()
	after = 0 // discard the subscription-time deliveries

	if d := client.GuardAdmin(context.Background()); d.Allowed {
		t.Fatal("user must be denied")
	}
	if after != 0 {
		t.Fatalf("gate denial must not emit watcher events, saw %d", after)
	}
}

func TestAvailableRoles(t *testing.T) {
	tests := []struct {
		name    string
		session credstore.Session
		want    []Role
	}{
		{
			name:    "super admin offers user and admin",
			session: credstore.Session{Token: "tok", Role: "SUPER_ADMIN"},
			want:    []Role{RoleUser, RoleAdmin},
		},
		{
			name:    "admin offers user only",
			session: credstore.Session{Token: "tok", Role: "ADMIN"},
			want:    []Role{RoleUser},
		},
		{
			name:    "plain user offers nothing",
			session: credstore.Session{Token: "tok", Role: "USER"},
		},
		{
			name: "logged out offers nothing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.NotFoundHandler())
			seedSession(t, client, tt.session)

			opts := client.AvailableRoles(context.Background())
			if len(opts) != len(tt.want) {
				t.Fatalf("expected %d options, got %d", len(tt.want), len(opts))
			}
			for i, opt := range opts {
				if opt.Value != tt.want[i] {
					t.Fatalf("option %d: expected %q, got %q", i, tt.want[i], opt.Value)
				}
				if opt.Label == "" || opt.Description == "" {
					t.Fatalf("option %q must carry label and description", opt.Value)
				}
			}
		})
	}
}
