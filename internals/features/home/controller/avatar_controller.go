package controller

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"diporani_web/internals/helpers/avatar"
)

// =============================
// 🖼️ GET /avatars/:initials?size=
// WebP kalau Accept mendukung, selain itu PNG.
// =============================
func AvatarImage(c *fiber.Ctx) error {
	size := c.QueryInt("size", avatar.DefaultSize)
	initials := avatar.Normalize(c.Params("initials"))
	format := avatar.Negotiate(c.Get(fiber.HeaderAccept))

	var buf bytes.Buffer
	if err := avatar.Encode(&buf, avatar.Render(initials, size), format); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat avatar")
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	c.Vary(fiber.HeaderAccept)
	return c.Send(buf.Bytes())
}
