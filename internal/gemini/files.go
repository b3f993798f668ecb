package gemini

import (
	"context"

	"google.golang.org/genai"
)

const defaultFileQuery = "Summarize the content of this file in detail."

// uploadState tracks the only multi-step protocol in the adapter:
// Uploading -> Processing -> (Active | Failed | TimedOut).
type uploadState int

const (
	stateUploading uploadState = iota
	stateProcessing
	stateActive
	stateFailed
	stateTimedOut
)

func stateOf(f *genai.File) uploadState {
	switch f.State {
	case genai.FileStateProcessing:
		return stateProcessing
	case genai.FileStateActive:
		return stateActive
	case genai.FileStateFailed:
		return stateFailed
	default:
		// Unknown lifecycle values are treated as settled so the query step
		// can surface whatever upstream does with the file reference.
		return stateActive
	}
}

// UploadFileAndQuery uploads a local file, polls until upstream finishes
// processing it, then asks the query (or a generic summary request) against
// the uploaded file.
func (c *Client) UploadFileAndQuery(ctx context.Context, p FileQueryParams) (*FileQueryResult, error) {
	if err := requireText("file path", p.Path); err != nil {
		return nil, err
	}
	query := p.Query
	if query == "" {
		query = defaultFileQuery
	}

	return callWithDeadline(ctx, c.deadline(fileTimeoutFactor), func(ctx context.Context) (*FileQueryResult, error) {
		file, err := c.api.UploadFile(ctx, p.Path, &genai.UploadFileConfig{
			MIMEType: MIMEForPath(p.Path),
		})
		if err != nil {
			return nil, err
		}
		if file == nil || file.Name == "" {
			return nil, newCallError(FailUnclassified, msgFileUploadNil, nil)
		}

		file, err = c.waitForFile(ctx, file)
		if err != nil {
			return nil, err
		}

		model := c.model(p.Model, c.cfg.TextModel)
		resp, err := c.api.GenerateContent(ctx, model, userContents(
			genai.NewPartFromURI(file.URI, file.MIMEType),
			textPart(query),
		), nil)
		if err != nil {
			return nil, err
		}

		return &FileQueryResult{
			Text:     splitParts(candidateParts(resp)).answerText(),
			FileName: file.Name,
		}, nil
	})
}

// waitForFile drives the poll loop, one status check per interval, strictly
// serial. Staying in the processing state past the maximum wait is a
// timeout, reported without ever observing a terminal status.
func (c *Client) waitForFile(ctx context.Context, file *genai.File) (*genai.File, error) {
	maxPolls := int(maxPollWait / pollInterval)

	for polls := 0; stateOf(file) == stateProcessing; polls++ {
		if polls >= maxPolls {
			return nil, newCallError(FailTimeout, msgTimeout, context.DeadlineExceeded)
		}
		if err := c.sleep(ctx, pollInterval); err != nil {
			return nil, err
		}
		var err error
		file, err = c.api.GetFile(ctx, file.Name)
		if err != nil {
			return nil, err
		}
	}

	if stateOf(file) == stateFailed {
		return nil, newCallError(FailUnclassified, msgFileFailed, nil)
	}
	return file, nil
}
