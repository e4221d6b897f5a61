package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"multibox/internal/domain"
)

// HTTP talks JSON to a directory server. Every transport-level failure is
// wrapped in domain.ErrDirectoryUnavailable so callers can treat the whole
// class as retryable.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the directory at base.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: base, HTTP: client}
}

// UpsertDeviceKey publishes the public key for (userID, deviceID).
func (c *HTTP) UpsertDeviceKey(
	ctx context.Context,
	userID domain.UserID,
	deviceID domain.DeviceID,
	publicKeyHex string,
) error {
	entry := domain.DirectoryEntry{
		UserID:       userID,
		DeviceID:     deviceID,
		PublicKeyHex: publicKeyHex,
	}
	return c.post(ctx, "/keys", entry, nil)
}

// ListDeviceKeys returns every registered device entry for userID. An
// unknown user yields an empty slice.
func (c *HTTP) ListDeviceKeys(
	ctx context.Context,
	userID domain.UserID,
) ([]domain.DirectoryEntry, error) {
	var entries []domain.DirectoryEntry
	if err := c.getJSON(ctx, "/keys/"+url.PathEscape(userID.String()), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: post %s: %v", domain.ErrDirectoryUnavailable, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: post %s: %s", domain.ErrDirectoryUnavailable, path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", domain.ErrDirectoryUnavailable, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: get %s: %s", domain.ErrDirectoryUnavailable, path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.DirectoryClient = (*HTTP)(nil)
