package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectIDParam coerces a path parameter into the store's native
// identifier; anything that isn't a 24-character hex string is a client error.
func parseObjectIDParam(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, errors.New("invalid identifier")
	}

	return id, nil
}
