package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Ответы сервисов отдаются в proto JSON: camelCase-ключи, пустые поля не пропадают.
var protoJSON = protojson.MarshalOptions{EmitUnpopulated: true}

func renderProto(c *gin.Context, code int, m proto.Message) {
	body, err := protoJSON.Marshal(m)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(code, "application/json; charset=utf-8", body)
}

// embedProto - для ответов вида {status, message, course: {...}}.
func embedProto(m proto.Message) json.RawMessage {
	body, err := protoJSON.Marshal(m)
	if err != nil {
		return json.RawMessage("null")
	}
	return body
}
