package directory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDirectoryTOML = `
slot_template = ["10:00 AM", "10:15 AM", "10:30 AM"]

[[states]]
name = "Telangana"
cities = ["Hyderabad", "Warangal"]

[[states]]
name = "Karnataka"
cities = ["Bengaluru"]

[[hospitals]]
state = "Telangana"
city = "Hyderabad"
names = ["Apollo Hyderabad"]

[[hospitals]]
state = "Karnataka"
city = "Bengaluru"
names = ["Manipal Hospital"]

[[departments]]
name = "ENT"

  [[departments.doctors]]
  name = "Dr. Rajesh"
  timing = "10:00 AM - 1:00 PM"

[[departments]]
name = "Cardiology"

  [[departments.doctors]]
  name = "Dr. Kumar"
  timing = "11:00 AM - 2:00 PM"
`

func writeTempDirectory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "directory.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	store, err := Load(writeTempDirectory(t, testDirectoryTOML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Telangana", "Karnataka"}, store.States())
	assert.Equal(t, []string{"Hyderabad", "Warangal"}, store.Cities("Telangana"))
	assert.Equal(t, []string{"Apollo Hyderabad"}, store.Hospitals("Telangana", "Hyderabad"))
	assert.Equal(t, []string{"ENT", "Cardiology"}, store.Departments())
	assert.Equal(t, []string{"10:00 AM", "10:15 AM", "10:30 AM"}, store.SlotTemplate())

	doctors := store.Doctors("ENT")
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Rajesh", doctors[0].Name)
	assert.Equal(t, "10:00 AM - 1:00 PM", doctors[0].Timing)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFile))
}

func TestLoad_EmptySlotTemplate(t *testing.T) {
	content := `
slot_template = []

[[states]]
name = "Telangana"
cities = ["Hyderabad"]
`
	_, err := Load(writeTempDirectory(t, content))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptySlotTemplate))
}

func TestStore_UnknownKeys(t *testing.T) {
	store, err := Load(writeTempDirectory(t, testDirectoryTOML))
	require.NoError(t, err)

	assert.Empty(t, store.Cities("Unknown State"))
	assert.Empty(t, store.Hospitals("Unknown State", "Nowhere"))
	assert.Empty(t, store.Hospitals("Telangana", "Nowhere"))
	assert.Empty(t, store.Doctors("Unknown Department"))
}

func TestStore_ReturnsCopies(t *testing.T) {
	store, err := Load(writeTempDirectory(t, testDirectoryTOML))
	require.NoError(t, err)

	slots := store.SlotTemplate()
	slots[0] = "mutated"
	assert.Equal(t, "10:00 AM", store.SlotTemplate()[0])

	states := store.States()
	states[0] = "mutated"
	assert.Equal(t, "Telangana", store.States()[0])
}

func TestStore_DoctorNames(t *testing.T) {
	store, err := Load(writeTempDirectory(t, testDirectoryTOML))
	require.NoError(t, err)

	names := store.DoctorNames()
	assert.ElementsMatch(t, []string{"Dr. Rajesh", "Dr. Kumar"}, names)
}
