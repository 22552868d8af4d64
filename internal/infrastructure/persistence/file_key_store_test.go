//go:build unit
// +build unit

package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/pkg/testutil"
)

// testBlob is a well-formed codec blob (exponent 3, modulus 5).
const testBlob = "AAAAAQMAAAABBQ=="

func setupFileKeyStore(t *testing.T) keys.KeyStore {
	t.Helper()
	store, err := NewFileKeyStore(t.TempDir(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return store
}

func TestFileKeyStore_PublicKeyRoundTrip(t *testing.T) {
	store := setupFileKeyStore(t)

	key := &keys.PublicKey{Key: testBlob, Email: "alice@example.com"}
	require.NoError(t, store.SavePublicKey(key))

	loaded, err := store.LoadPublicKey()
	require.NoError(t, err)
	assert.Equal(t, key, loaded)
}

func TestFileKeyStore_PrivateKeyRoundTrip(t *testing.T) {
	store := setupFileKeyStore(t)

	key := &keys.PrivateKey{
		Key:    testBlob,
		Emails: []string{"alice@example.com", "bob@example.com"},
	}
	require.NoError(t, store.SavePrivateKey(key))

	loaded, err := store.LoadPrivateKey()
	require.NoError(t, err)
	assert.Equal(t, key.Key, loaded.Key)
	assert.ElementsMatch(t, key.Emails, loaded.Emails)
}

func TestFileKeyStore_CorrespondentKey(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileKeyStore(dir, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	key := &keys.PublicKey{Key: testBlob, Email: "bob@example.com"}
	require.NoError(t, store.SaveCorrespondentKey("bob@example.com", key))

	// The file is named after the correspondent with a .key suffix.
	_, statErr := os.Stat(filepath.Join(dir, "bob@example.com.key"))
	assert.NoError(t, statErr)

	loaded, err := store.LoadCorrespondentKey("bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, key, loaded)
}

func TestFileKeyStore_FileShape(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileKeyStore(dir, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	require.NoError(t, store.SavePublicKey(&keys.PublicKey{Key: testBlob}))

	raw, err := os.ReadFile(filepath.Join(dir, "public.key"))
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, testBlob, payload["key"])
	assert.Contains(t, payload, "email")
}

func TestFileKeyStore_MissingFile(t *testing.T) {
	store := setupFileKeyStore(t)

	_, err := store.LoadPublicKey()
	assert.Error(t, err)

	_, err = store.LoadCorrespondentKey("nobody@example.com")
	assert.Error(t, err)
}

func TestFileKeyStore_RejectsInvalidKey(t *testing.T) {
	store := setupFileKeyStore(t)

	err := store.SavePublicKey(&keys.PublicKey{Key: ""})
	assert.Error(t, err)

	err = store.SavePrivateKey(&keys.PrivateKey{Key: testBlob, Emails: []string{"not-an-email"}})
	assert.Error(t, err)
}
