package form

// GenericErrorKey is the field name unusable or message-only rejection
// payloads are installed under.
const GenericErrorKey = "error"

type payloadKind int

const (
	// payloadUnusable: missing, or not a structured object.
	payloadUnusable payloadKind = iota
	// payloadErrors: object carrying an "errors" attribute.
	payloadErrors
	// payloadMessage: object carrying a "message" attribute (no "errors").
	payloadMessage
	// payloadFieldMap: any other object; top-level attributes are treated
	// as field→message entries.
	payloadFieldMap
)

// payloadShape is the classified form of a rejection payload. Exactly one
// of the four kinds applies; classification order is the priority order.
type payloadShape struct {
	kind    payloadKind
	fields  map[string]any
	message any
}

// classifyPayload maps a decoded rejection payload onto one of the four
// shapes. ok is false when the response carried no decodable payload.
func classifyPayload(payload any, ok bool) payloadShape {
	if !ok {
		return payloadShape{kind: payloadUnusable}
	}
	object, isObject := payload.(map[string]any)
	if !isObject {
		return payloadShape{kind: payloadUnusable}
	}
	if nested, exists := object["errors"]; exists {
		fields, _ := nested.(map[string]any)
		return payloadShape{kind: payloadErrors, fields: fields}
	}
	if message, exists := object["message"]; exists {
		return payloadShape{kind: payloadMessage, message: message}
	}
	return payloadShape{kind: payloadFieldMap, fields: object}
}

// normalizePayload turns a classified shape into the map installed into the
// error store.
func normalizePayload(shape payloadShape, defaultMessage string) map[string][]string {
	switch shape.kind {
	case payloadErrors, payloadFieldMap:
		out := make(map[string][]string, len(shape.fields))
		for field, value := range shape.fields {
			out[field] = coerceMessages(value)
		}
		return out
	case payloadMessage:
		messages := coerceMessages(shape.message)
		if len(messages) == 0 || (len(messages) == 1 && messages[0] == "") {
			messages = []string{defaultMessage}
		}
		return map[string][]string{GenericErrorKey: messages}
	default:
		return map[string][]string{GenericErrorKey: {defaultMessage}}
	}
}
