package handlers

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/Zulu-inventor33/alx-files-manager/internal/auth"
	"github.com/Zulu-inventor33/alx-files-manager/internal/models"
	"github.com/Zulu-inventor33/alx-files-manager/internal/service"
)

const defaultContentType = "text/plain; charset=utf-8"

type FileHandler struct {
	svc      *service.FileService
	resolver *auth.Resolver
}

func NewFileHandler(svc *service.FileService, resolver *auth.Resolver) *FileHandler {
	return &FileHandler{svc: svc, resolver: resolver}
}

type uploadReq struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID any    `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// PostUpload creates a folder or stores an uploaded file/image.
func (h *FileHandler) PostUpload(c *fiber.Ctx) error {
	u, err := userFromToken(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	var req uploadReq
	_ = c.BodyParser(&req)

	view, err := h.svc.Create(c.Context(), u, service.CreateInput{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: parentIDString(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetShow returns one file's metadata.
func (h *FileHandler) GetShow(c *fiber.Ctx) error {
	u, err := userFromToken(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.svc.Get(c.Context(), u, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// GetIndex lists the caller's files under a parent folder, paginated.
func (h *FileHandler) GetIndex(c *fiber.Ctx) error {
	u, err := userFromToken(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	parentID := c.Query("parentId", models.RootFolderID)
	page := int64(c.QueryInt("page", 0))

	views, err := h.svc.List(c.Context(), u, parentID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// PutPublish marks a file public.
func (h *FileHandler) PutPublish(c *fiber.Ctx) error {
	return h.setVisibility(c, true)
}

// PutUnpublish marks a file private again.
func (h *FileHandler) PutUnpublish(c *fiber.Ctx) error {
	return h.setVisibility(c, false)
}

func (h *FileHandler) setVisibility(c *fiber.Ctx, public bool) error {
	u, err := userFromToken(c, h.resolver)
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.svc.SetVisibility(c.Context(), u, c.Params("id"), public)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// GetFile streams a file's bytes. No session is required when the file is
// public; ?size= selects a thumbnail derivative.
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	// Unauthenticated callers can still read public files.
	u, _ := userFromToken(c, h.resolver)

	path, name, err := h.svc.Content(c.Context(), u, c.Params("id"), c.Query("size"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.SendFile(path); err != nil {
		return respondError(c, err)
	}
	c.Response().Header.SetContentType(contentTypeFor(name))
	return nil
}

// contentTypeFor infers the content type from the record's display name;
// stored paths carry no extension.
func contentTypeFor(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return defaultContentType
	}
	if ct := utils.GetMIME(ext); ct != "" {
		return ct
	}
	return defaultContentType
}

// parentIDString normalizes the upload body's parentId, which clients send
// either as the integer 0 or as a hex string.
func parentIDString(v any) string {
	switch p := v.(type) {
	case nil:
		return models.RootFolderID
	case string:
		if p == "" {
			return models.RootFolderID
		}
		return p
	case float64:
		if p == 0 {
			return models.RootFolderID
		}
		return strconv.FormatFloat(p, 'f', -1, 64)
	default:
		return models.RootFolderID
	}
}
