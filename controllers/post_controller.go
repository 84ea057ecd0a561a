package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cppla/minisocial/middleware"
	"github.com/cppla/minisocial/models"
	"github.com/cppla/minisocial/utils"
)

// PostController manages post CRUD plus the like and comment mutations.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a PostController.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// CreatePost creates a post owned by the authenticated user and records the
// post reference on the author. Both writes run in one transaction.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Image       string `json:"image"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	post := models.Post{
		AuthorID:    user.ID,
		Title:       utils.Sanitize(strings.TrimSpace(req.Title)),
		Description: utils.Sanitize(req.Description),
		Image:       strings.TrimSpace(req.Image),
	}

	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		user.Posts = append(user.Posts, post.ID)
		return tx.Save(&user).Error
	})
	if err != nil {
		utils.Sugar.Errorf("create post for user %d failed: %v", user.ID, err)
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"postId":      post.ID,
		"title":       post.Title,
		"description": post.Description,
	})
}

// GetPost returns a single post with its embedded likes and comments.
func (p *PostController) GetPost(ctx *gin.Context) {
	postID, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
		return
	}

	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Post not found")
			return
		}
		utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": post})
}

// AllPosts returns every post. No pagination.
func (p *PostController) AllPosts(ctx *gin.Context) {
	var posts []models.Post
	if err := p.db.Find(&posts).Error; err != nil {
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(posts) == 0 {
		utils.Message(ctx, http.StatusNotFound, "No posts found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

// DeletePost removes a post owned by the authenticated user and drops the
// reference from the author's post list. Deleting an absent post reports
// "deleted already"; deleting someone else's post is refused.
func (p *PostController) DeletePost(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "User not found")
			return
		}
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	postID, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Post deleted already")
			return
		}
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	if !utils.ContainsID(user.Posts, post.ID) {
		utils.Message(ctx, http.StatusNotFound, "user and post do not match")
		return
	}

	err = p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&post).Error; err != nil {
			return err
		}
		user.Posts = utils.RemoveID(user.Posts, post.ID)
		return tx.Save(&user).Error
	})
	if err != nil {
		utils.Sugar.Errorf("delete post %d failed: %v", post.ID, err)
		utils.Message(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "post deleted"})
}

// Like records the acting user in the post's liker list. Likers form a set:
// liking an already-liked post is a no-op.
func (p *PostController) Like(ctx *gin.Context) {
	user, post, done := p.loadUserAndPost(ctx)
	if done {
		return
	}

	if !utils.ContainsID(post.Likes, user.ID) {
		post.Likes = append(post.Likes, user.ID)
		if err := p.db.Save(post).Error; err != nil {
			utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
			return
		}
	}

	utils.Message(ctx, http.StatusOK, "Post liked")
}

// Unlike removes the acting user from the post's liker list.
func (p *PostController) Unlike(ctx *gin.Context) {
	user, post, done := p.loadUserAndPost(ctx)
	if done {
		return
	}

	if utils.ContainsID(post.Likes, user.ID) {
		post.Likes = utils.RemoveID(post.Likes, user.ID)
		if err := p.db.Save(post).Error; err != nil {
			utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
			return
		}
	}

	utils.Message(ctx, http.StatusOK, "Post unliked")
}

// Comment appends an embedded comment to the post and returns the new
// comment's id.
func (p *PostController) Comment(ctx *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Message(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, post, done := p.loadUserAndPost(ctx)
	if done {
		return
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		AuthorID:  user.ID,
		Text:      utils.Sanitize(req.Text),
		CreatedAt: time.Now(),
	}

	post.Comments = append(post.Comments, comment)
	if err := p.db.Save(post).Error; err != nil {
		utils.Sugar.Errorf("comment on post %d failed: %v", post.ID, err)
		utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "comment added successfully",
		"commentId": comment.ID,
	})
}

// loadUserAndPost fetches the acting user and the :id post for the like,
// unlike and comment mutations. It writes the error response itself and
// reports done=true when the handler should stop.
func (p *PostController) loadUserAndPost(ctx *gin.Context) (*models.User, *models.Post, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		utils.Message(ctx, http.StatusUnauthorized, "Unauthorized")
		return nil, nil, true
	}

	postID, err := parseID(ctx.Param("id"))
	if err != nil {
		utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
		return nil, nil, true
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "User/Post not found")
		} else {
			utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
		}
		return nil, nil, true
	}

	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "User/Post not found")
		} else {
			utils.Message(ctx, http.StatusInternalServerError, "internal server error/Post not found")
		}
		return nil, nil, true
	}

	return &user, &post, false
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
