package domain

import "fmt"

const (
	notFoundTemplate     = "Command `%s` is not found. Use `%chelp` for more info."
	invalidArgsTemplate  = "Invalid arguments for `%s`. Use `%chelp %s` for more info."
	missingRolesTemplate = "You are not assigned the role(s) required for this command. Use `%chelp %s` for more info."
)

func NotFoundReply(command string) string {
	return fmt.Sprintf(notFoundTemplate, command, Prefix)
}

func InvalidArgsReply(command string) string {
	return fmt.Sprintf(invalidArgsTemplate, command, Prefix, command)
}

func MissingRolesReply(command string) string {
	return fmt.Sprintf(missingRolesTemplate, Prefix, command)
}
