package avro

// RecordEventSchema is the Avro schema for record mutation events.
// Every field is an optional union so older producers and newer
// consumers can share the same topic.
const RecordEventSchema = `{
	"type": "record",
	"name": "RecordEvent",
	"namespace": "com.crm.records",
	"fields": [
		{"name": "entity", "type": ["null", "string"], "default": null},
		{"name": "id", "type": ["null", "string"], "default": null},
		{"name": "summary", "type": ["null", "string"], "default": null},
		{"name": "occurred_at", "type": ["null", "string"], "default": null}
	]
}`
