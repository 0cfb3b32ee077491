package models_test

import (
	"testing"

	"team-management-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestPermissionSetContains(t *testing.T) {
	set := models.PermissionSet{models.CapGetBilling, models.CapSetBilling}

	assert.True(t, set.Contains(models.CapGetBilling))
	assert.False(t, set.Contains(models.CapDeleteTeam))
	assert.False(t, models.PermissionSet{}.Contains(models.CapGetBilling))
}

func TestPermissionSetIsSubsetOf(t *testing.T) {
	full := models.FullPermissions()
	partial := models.PermissionSet{models.CapCreateConversation, models.CapGetBilling}

	assert.True(t, partial.IsSubsetOf(full))
	assert.False(t, full.IsSubsetOf(partial))
	// The empty set is a subset of everything, including itself
	assert.True(t, models.PermissionSet{}.IsSubsetOf(partial))
	assert.True(t, models.PermissionSet{}.IsSubsetOf(models.PermissionSet{}))
	// A set is a subset of itself
	assert.True(t, partial.IsSubsetOf(partial))
}

func TestPermissionSetNormalize(t *testing.T) {
	set := models.PermissionSet{
		models.CapGetBilling,
		models.CapCreateConversation,
		models.CapGetBilling,
	}

	normalized := set.Normalize()
	assert.Equal(t, models.PermissionSet{models.CapGetBilling, models.CapCreateConversation}, normalized)
	// The original is untouched
	assert.Len(t, set, 3)
}

func TestPermissionSetValidate(t *testing.T) {
	assert.NoError(t, models.PermissionSet{}.Validate())
	assert.NoError(t, models.FullPermissions().Validate())

	err := models.PermissionSet{models.CapGetBilling, "teleport"}.Validate()
	assert.ErrorContains(t, err, "teleport")
}

func TestFullPermissionsCoversEveryCapability(t *testing.T) {
	full := models.FullPermissions()
	assert.Len(t, full, len(models.AllCapabilities))
	for _, c := range models.AllCapabilities {
		assert.True(t, full.Contains(c), "missing %s", c)
	}

	// Mutating the returned set must not leak into later calls
	full[0] = "mutated"
	assert.True(t, models.FullPermissions().Contains(models.AllCapabilities[0]))
}

func TestPermissionSetScanValue(t *testing.T) {
	set := models.PermissionSet{models.CapGetBilling}

	value, err := set.Value()
	assert.NoError(t, err)

	var scanned models.PermissionSet
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, set, scanned)

	// Nil column scans to the empty set, not nil
	var fromNull models.PermissionSet
	assert.NoError(t, fromNull.Scan(nil))
	assert.NotNil(t, fromNull)
	assert.Empty(t, fromNull)

	_, err = models.PermissionSet(nil).Value()
	assert.NoError(t, err)

	assert.Error(t, scanned.Scan(42))
}

func TestCapabilityIsKnown(t *testing.T) {
	assert.True(t, models.CapDeleteTeam.IsKnown())
	assert.False(t, models.Capability("teleport").IsKnown())
}
