package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProfileStatus(t *testing.T) {
	for _, valid := range []string{"active", "suspended", "pending"} {
		status, err := ParseProfileStatus(valid)
		require.NoError(t, err)
		require.Equal(t, ProfileStatus(valid), status)
	}

	for _, invalid := range []string{"", "ACTIVE", "banned", "deleted"} {
		_, err := ParseProfileStatus(invalid)
		require.Error(t, err, "value %q should be rejected", invalid)
	}
}

func TestParseReportStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "rejected"} {
		status, err := ParseReportStatus(valid)
		require.NoError(t, err)
		require.Equal(t, ReportStatus(valid), status)
	}

	for _, invalid := range []string{"", "Approved", "verified", "done"} {
		_, err := ParseReportStatus(invalid)
		require.Error(t, err, "value %q should be rejected", invalid)
	}
}

func TestParseProfileRole(t *testing.T) {
	role, err := ParseProfileRole("entrepreneur")
	require.NoError(t, err)
	require.Equal(t, RoleEntrepreneur, role)

	_, err = ParseProfileRole("superuser")
	require.Error(t, err)
}

func TestProfileUpdateIsEmpty(t *testing.T) {
	require.True(t, ProfileUpdate{}.IsEmpty())

	status := ProfileStatusSuspended
	require.False(t, ProfileUpdate{Status: &status}.IsEmpty())

	typ := "wholesale"
	require.False(t, ProfileUpdate{Type: &typ}.IsEmpty())
}
