package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimoga/internal/i18n"
)

const maxFormBytes = 64 << 10

// @Summary      Get form snapshot
// @Description  Last saved inputs of a screen; {} when nothing was saved.
// @Tags         state
// @Produce      json
// @Param        key  path      string  true  "Form key"  example(irrigation)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/forms/{key} [get]
func (h *Handler) getForm(c *gin.Context) {
	raw := h.services.Forms.GetForm(c.Request.Context(), c.Param("key"))
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// @Summary      Save form snapshot
// @Tags         state
// @Accept       json
// @Param        key   path  string                  true  "Form key"
// @Param        body  body  map[string]interface{}  true  "Any JSON object"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/forms/{key} [put]
func (h *Handler) putForm(c *gin.Context) {
	key := c.Param("key")
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxFormBytes))
	if err != nil {
		badBody(c, err)
		return
	}
	if err := h.services.Forms.PutForm(c.Request.Context(), key, json.RawMessage(body)); err != nil {
		h.respondServiceError(c, "failed to save form", "form_put_failed", err, "key", key)
		return
	}
	c.Status(http.StatusNoContent)
}

type langBody struct {
	Lang string `json:"lang" binding:"required" example:"ar"`
}

func langResponse(l i18n.Locale) gin.H {
	return gin.H{"lang": l, "dir": l.Direction()}
}

// @Summary      Get language
// @Tags         state
// @Produce      json
// @Success      200  {object}  map[string]string  "lang, dir"
// @Router       /api/v1/prefs/lang [get]
func (h *Handler) getLang(c *gin.Context) {
	c.JSON(http.StatusOK, langResponse(h.services.Prefs.Lang(c.Request.Context())))
}

// @Summary      Set language
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body      langBody  true  "fr, ar or en"
// @Success      200   {object}  map[string]string  "lang, dir"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/prefs/lang [put]
func (h *Handler) setLang(c *gin.Context) {
	var body langBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badBody(c, err)
		return
	}
	l, err := h.services.Prefs.SetLang(c.Request.Context(), body.Lang)
	if err != nil {
		h.respondServiceError(c, "failed to save language", "prefs_set_lang_failed", err, "lang", body.Lang)
		return
	}
	c.JSON(http.StatusOK, langResponse(l))
}
