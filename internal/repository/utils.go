// filepath: internal/repository/utils.go
package repository

import (
	"encoding/json"

	"animehub/internal/models"
)

// decodeDocument unmarshals a stored body into an open Document map and
// injects the row id under the "_id" key.
func decodeDocument(id string, body []byte) (models.Document, error) {
	doc := make(models.Document)
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	doc["_id"] = id
	return doc, nil
}
