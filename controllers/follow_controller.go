package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/minisocial/middleware"
	"github.com/cppla/minisocial/models"
	"github.com/cppla/minisocial/utils"
)

// FollowController maintains the two-sided follower/following lists. Each
// relationship edit touches two user documents; both writes run inside one
// transaction so a failure cannot leave the relationship asymmetric.
type FollowController struct {
	db *gorm.DB
}

// NewFollowController creates a FollowController.
func NewFollowController(db *gorm.DB) *FollowController {
	return &FollowController{db: db}
}

// Follow adds the acting user to the target's follower list and the target to
// the acting user's following list. Membership is checked on the target's
// follower list first, so repeating the call is a no-op. There is no
// self-follow guard.
func (f *FollowController) Follow(ctx *gin.Context) {
	user, target, done := f.loadPair(ctx, "User to follow not found")
	if done {
		return
	}

	if utils.ContainsID(target.Followers, user.ID) {
		utils.Message(ctx, http.StatusOK, "User followed already")
		return
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if user.ID == target.ID {
			// Same row; one save keeps both list edits.
			user.Following = append(user.Following, user.ID)
			user.Followers = append(user.Followers, user.ID)
			return tx.Save(user).Error
		}
		user.Following = append(user.Following, target.ID)
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		target.Followers = append(target.Followers, user.ID)
		return tx.Save(target).Error
	})
	if err != nil {
		utils.Sugar.Errorf("follow %d -> %d failed: %v", user.ID, target.ID, err)
		utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.Message(ctx, http.StatusOK, "User followed successfully")
}

// Unfollow removes the edge from both sides. Removal is by id value; calling
// it without a prior follow replies "unfollowed already" without mutating.
func (f *FollowController) Unfollow(ctx *gin.Context) {
	user, target, done := f.loadPair(ctx, "User to unfollow not found")
	if done {
		return
	}

	if !utils.ContainsID(target.Followers, user.ID) {
		utils.Message(ctx, http.StatusOK, "User unfollowed already")
		return
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if user.ID == target.ID {
			user.Following = utils.RemoveID(user.Following, user.ID)
			user.Followers = utils.RemoveID(user.Followers, user.ID)
			return tx.Save(user).Error
		}
		user.Following = utils.RemoveID(user.Following, target.ID)
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		target.Followers = utils.RemoveID(target.Followers, user.ID)
		return tx.Save(target).Error
	})
	if err != nil {
		utils.Sugar.Errorf("unfollow %d -> %d failed: %v", user.ID, target.ID, err)
		utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.Message(ctx, http.StatusOK, "User unfollowed successfully")
}

// loadPair fetches the acting user and the :id target. It writes the error
// response itself and reports done=true when the handler should stop.
func (f *FollowController) loadPair(ctx *gin.Context, targetMissing string) (*models.User, *models.User, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "Unauthorized")
		return nil, nil, true
	}

	targetID, err := parseID(ctx.Param("id"))
	if err != nil {
		// Mirrors the store-level cast failure of the original behavior.
		utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		return nil, nil, true
	}

	var user models.User
	if err := f.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
		} else {
			utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		}
		return nil, nil, true
	}

	var target models.User
	if err := f.db.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, targetMissing)
		} else {
			utils.Message(ctx, http.StatusInternalServerError, "Internal server error")
		}
		return nil, nil, true
	}

	return &user, &target, false
}
