package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	db, h := setupServer(t)

	aliceToken := authenticate(t, h, "alice@x.com", "pw1")
	authenticate(t, h, "bob@x.com", "pw2")
	bob := loadUserByEmail(t, db, "bob@x.com")

	w := doJSON(t, h, http.MethodPost, followPath(bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User followed successfully", message(t, w))

	w = doJSON(t, h, http.MethodPost, followPath(bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User followed already", message(t, w))

	alice := loadUserByEmail(t, db, "alice@x.com")
	bob = loadUserByEmail(t, db, "bob@x.com")
	assert.Equal(t, []uint{bob.ID}, []uint(alice.Following))
	assert.Equal(t, []uint{alice.ID}, []uint(bob.Followers))

	// Profile reflects the single edge.
	w = doJSON(t, h, http.MethodGet, "/api/user", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Following int `json:"following"`
		Followers int `json:"followers"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 1, resp.Following)
	assert.Equal(t, 0, resp.Followers)
}

func TestUnfollowRestoresBothSides(t *testing.T) {
	db, h := setupServer(t)

	aliceToken := authenticate(t, h, "alice@x.com", "pw1")
	authenticate(t, h, "bob@x.com", "pw2")
	bob := loadUserByEmail(t, db, "bob@x.com")

	w := doJSON(t, h, http.MethodPost, followPath(bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPost, unfollowPath(bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User unfollowed successfully", message(t, w))

	alice := loadUserByEmail(t, db, "alice@x.com")
	bob = loadUserByEmail(t, db, "bob@x.com")
	assert.Empty(t, alice.Following)
	assert.Empty(t, bob.Followers)
}

func TestUnfollowWithoutFollow(t *testing.T) {
	db, h := setupServer(t)

	aliceToken := authenticate(t, h, "alice@x.com", "pw1")
	authenticate(t, h, "bob@x.com", "pw2")
	bob := loadUserByEmail(t, db, "bob@x.com")

	w := doJSON(t, h, http.MethodPost, unfollowPath(bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User unfollowed already", message(t, w))

	bob = loadUserByEmail(t, db, "bob@x.com")
	assert.Empty(t, bob.Followers)
}

func TestFollowTargetMissing(t *testing.T) {
	_, h := setupServer(t)

	aliceToken := authenticate(t, h, "alice@x.com", "pw1")

	w := doJSON(t, h, http.MethodPost, "/api/follow/9999", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User to follow not found", message(t, w))

	w = doJSON(t, h, http.MethodPost, "/api/unfollow/9999", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User to unfollow not found", message(t, w))
}

func TestSelfFollowAndUnfollow(t *testing.T) {
	db, h := setupServer(t)

	aliceToken := authenticate(t, h, "alice@x.com", "pw1")
	alice := loadUserByEmail(t, db, "alice@x.com")

	// No self-follow guard: the edge is recorded on both lists of the same record.
	w := doJSON(t, h, http.MethodPost, followPath(alice.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User followed successfully", message(t, w))

	alice = loadUserByEmail(t, db, "alice@x.com")
	assert.Equal(t, []uint{alice.ID}, []uint(alice.Following))
	assert.Equal(t, []uint{alice.ID}, []uint(alice.Followers))

	w = doJSON(t, h, http.MethodPost, unfollowPath(alice.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User unfollowed successfully", message(t, w))

	alice = loadUserByEmail(t, db, "alice@x.com")
	assert.Empty(t, alice.Following)
	assert.Empty(t, alice.Followers)
}
