package email

// PreviewData contains sample template data for local preview/testing.
//
// It maps:
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[string]map[string]string{
	"reminder": {
		"MemberName": "Alice",
		"OpenTasks":  "3",
	},
}
