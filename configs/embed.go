package configs

import _ "embed"

// ApplicationYAML is the default properties file, overridable through PROPERTIES_FILE_PATH.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the default message catalog, overridable through MESSAGES_FILE_PATH.
//
//go:embed messages.yml
var MessagesYAML []byte
