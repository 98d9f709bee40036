package dialects

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hexparrot/dataprepper/internal/extract"
	"github.com/hexparrot/dataprepper/internal/model"
)

// GChat extracts Google Chat JSON takeouts. The export is either a
// top-level {"messages": [...]} object or a bare message list; each
// message carries creator name/email, a long-form created date and the
// text body. The author is rendered "Name <email>".
type GChat struct{}

func NewGChat() *GChat { return &GChat{} }

func (e *GChat) Name() string        { return "gchat" }
func (e *GChat) Kinds() []model.Kind { return []model.Kind{model.KindJSON} }
func (e *GChat) Required() []string  { return []string{"message"} }

type gchatExport struct {
	Messages []gchatMessage `json:"messages"`
}

type gchatMessage struct {
	Creator struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"creator"`
	CreatedDate string `json:"created_date"`
	Text        string `json:"text"`
}

func (e *GChat) ExtractCandidates(ctx context.Context, content []byte, pctx extract.Context) ([]extract.Candidate, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, nil
	}

	var messages []gchatMessage
	var export gchatExport
	if err := json.Unmarshal(content, &export); err == nil && export.Messages != nil {
		messages = export.Messages
	} else if err := json.Unmarshal(content, &messages); err != nil {
		return nil, fmt.Errorf("not parsable as a chat export: %w", err)
	}

	var candidates []extract.Candidate
	for _, msg := range messages {
		if ctx.Err() != nil {
			break
		}

		text := strings.TrimSpace(msg.Text)
		if text == "" {
			pctx.Logf("gchat: skipping empty message")
			continue
		}

		name := msg.Creator.Name
		if name == "" {
			name = "Unknown"
		}
		email := msg.Creator.Email
		if email == "" {
			email = "unknown@example.com"
		}

		candidates = append(candidates, extract.Candidate{
			"author":    fmt.Sprintf("%s <%s>", name, email),
			"message":   text,
			"timestamp": msg.CreatedDate,
		})
	}
	return candidates, nil
}
