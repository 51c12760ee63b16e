package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cratenotes/cratenotes/enrich"
	"github.com/cratenotes/cratenotes/middleware"
	"github.com/cratenotes/cratenotes/models"
	"github.com/cratenotes/cratenotes/store"
	"github.com/cratenotes/cratenotes/utils"
)

// PostStore is the slice of the storage accessor the handlers need.
type PostStore interface {
	FindPosts(ctx context.Context, page store.Page, authorID uint) ([]models.Post, error)
	GetPost(ctx context.Context, id uint) (*models.Post, error)
	InsertPost(ctx context.Context, post *models.Post) error
	FindComments(ctx context.Context, postID uint, page store.Page) ([]models.Comment, error)
	InsertComment(ctx context.Context, postID uint, content string, authorID uint) (*models.Comment, error)
}

// Enricher augments a new post with catalog and encyclopedia metadata.
// Implementations never fail; they degrade to fallback values.
type Enricher interface {
	Enrich(ctx context.Context, artist, title string) enrich.Result
}

// PostController orchestrates the feed read paths and the post/comment
// write paths: validate, authorize, enrich (posts only), persist.
type PostController struct {
	store    PostStore
	enricher Enricher
}

func NewPostController(st PostStore, enricher Enricher) *PostController {
	return &PostController{store: st, enricher: enricher}
}

// ListPosts returns one feed page. Query parameters: before (RFC 3339
// cursor), by (author id filter), limit.
func (p *PostController) ListPosts(ctx *gin.Context) {
	page, err := store.ParsePage(ctx.Query("before"), ctx.Query("limit"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid pagination parameters")
		return
	}

	var authorID uint
	if by := ctx.Query("by"); by != "" {
		if authorID, err = store.ParseID(by); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40011, "invalid author id")
			return
		}
	}

	posts, err := p.store.FindPosts(ctx.Request.Context(), page, authorID)
	if err != nil {
		p.respondStoreError(ctx, 50010, "failed to fetch posts", err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	utils.Success(ctx, gin.H{"posts": posts})
}

// GetPost returns a single post with its creator.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, err := store.ParseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40012, "invalid post id")
		return
	}

	post, err := p.store.GetPost(ctx.Request.Context(), id)
	if err != nil {
		p.respondStoreError(ctx, 50011, "failed to load post", err)
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// CreatePost creates an album recommendation for the authenticated
// user. The enrichment lookups run before persistence but can only
// degrade the post, never block its creation.
func (p *PostController) CreatePost(ctx *gin.Context) {
	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "you must be logged in to post")
		return
	}

	var req struct {
		AlbumTitle  string `json:"albumTitle"`
		AlbumArtist string `json:"albumArtist"`
		YT          string `json:"yt"`
		Theme       string `json:"theme"`
		AlbumArt    string `json:"albumArt"`
	}
	dec := json.NewDecoder(ctx.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.AlbumTitle))
	artist := utils.Sanitize(strings.TrimSpace(req.AlbumArtist))
	theme := utils.Sanitize(strings.TrimSpace(req.Theme))
	yt := strings.TrimSpace(req.YT)
	albumArt := strings.TrimSpace(req.AlbumArt)
	if title == "" || artist == "" || theme == "" || yt == "" || albumArt == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "all of albumTitle, albumArtist, yt, theme, albumArt are required")
		return
	}

	res := p.enricher.Enrich(ctx.Request.Context(), artist, title)

	post := &models.Post{
		UserID:      identity.UserID,
		AlbumTitle:  title,
		AlbumArtist: artist,
		Theme:       theme,
		YT:          yt,
		AlbumArt:    albumArt,
		SpotifyURL:  res.SpotifyURL,
		WikiDesc:    res.WikiDesc,
	}
	if err := p.store.InsertPost(ctx.Request.Context(), post); err != nil {
		p.respondStoreError(ctx, 50020, "failed to insert post", err)
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// ListComments returns one page of a post's comments.
func (p *PostController) ListComments(ctx *gin.Context) {
	postID, err := store.ParseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid post id")
		return
	}
	page, err := store.ParsePage(ctx.Query("before"), ctx.Query("limit"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid pagination parameters")
		return
	}

	comments, err := p.store.FindComments(ctx.Request.Context(), postID, page)
	if err != nil {
		p.respondStoreError(ctx, 50030, "failed to fetch comments", err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	utils.Success(ctx, gin.H{"comments": comments})
}

// CreateComment adds a comment to a post for the authenticated user.
// A client-sent author field is ignored; the author is always the
// authenticated identity.
func (p *PostController) CreateComment(ctx *gin.Context) {
	identity, ok := middleware.IdentityFrom(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40111, "you must be logged in to comment")
		return
	}

	postID, err := store.ParseID(ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40032, "invalid post id")
		return
	}

	var req struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40033, "invalid request payload")
		return
	}
	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40034, "content cannot be empty")
		return
	}

	// The accessor does not verify the parent exists; keep orphaned
	// comments out here.
	if _, err := p.store.GetPost(ctx.Request.Context(), postID); err != nil {
		p.respondStoreError(ctx, 50031, "failed to load post", err)
		return
	}

	comment, err := p.store.InsertComment(ctx.Request.Context(), postID, content, identity.UserID)
	if err != nil {
		p.respondStoreError(ctx, 50032, "failed to insert comment", err)
		return
	}
	utils.Success(ctx, gin.H{"comment": comment})
}

// respondStoreError maps store error kinds onto HTTP responses. Driver
// detail goes to the log only; clients get the generic message.
func (p *PostController) respondStoreError(ctx *gin.Context, code int, message string, err error) {
	switch store.KindOf(err) {
	case store.KindInvalidArgument:
		utils.Error(ctx, http.StatusBadRequest, code, message)
	case store.KindNotFound:
		utils.Error(ctx, http.StatusNotFound, 40400, "post not found")
	default:
		if utils.Sugar != nil {
			utils.Sugar.Errorf("%s request_id=%s: %v", message, ctx.GetString(utils.RequestIDKey), err)
		}
		utils.Error(ctx, http.StatusInternalServerError, code, message)
	}
}
