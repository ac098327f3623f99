package postgre

import (
	"fmt"
	"strings"

	repo "ai-chatbot/internal/conversation/repository"
)

// buildListQuery builds WHERE clause + args for List.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Intent != "" {
		conditions = append(conditions, fmt.Sprintf("predicted_intent = $%d", idx))
		args = append(args, opt.Intent)
		idx++
	}
	if opt.Channel != "" {
		conditions = append(conditions, fmt.Sprintf("channel = $%d", idx))
		args = append(args, opt.Channel)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
