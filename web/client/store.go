package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.hackfix.me/prefs/web/server/types"
)

func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	u, err := c.valueURL(key)
	if err != nil {
		return "", false, fmt.Errorf("failed joining URL path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return "", false, fmt.Errorf("failed creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("failed sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf(
			"request 'GET %s' failed with status %s", u.String(), resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("failed reading response body: %w", err)
	}

	return string(body), true, nil
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	u, err := c.valueURL(key)
	if err != nil {
		return fmt.Errorf("failed joining URL path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", u.String(), strings.NewReader(value))
	if err != nil {
		return fmt.Errorf("failed creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("failed sending request: %w", err)
	}
	defer resp.Body.Close()

	setResp := &types.StoreSetResponse{}
	if err := decodeResponse(resp.Body, setResp); err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return errors.New(setResp.Error)
	}

	return nil
}

func (c *Client) ContainsKey(ctx context.Context, key string) (bool, error) {
	u, err := c.valueURL(key)
	if err != nil {
		return false, fmt.Errorf("failed joining URL path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "HEAD", u.String(), nil)
	if err != nil {
		return false, fmt.Errorf("failed creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed sending request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	}

	return false, fmt.Errorf(
		"request 'HEAD %s' failed with status %s", u.String(), resp.Status)
}

func (c *Client) Remove(ctx context.Context, key string) error {
	u, err := c.valueURL(key)
	if err != nil {
		return fmt.Errorf("failed joining URL path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "DELETE", u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("failed sending request: %w", err)
	}
	defer resp.Body.Close()

	rmResp := &types.StoreRemoveResponse{}
	if err := decodeResponse(resp.Body, rmResp); err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return errors.New(rmResp.Error)
	}

	return nil
}

func (c *Client) Keys(ctx context.Context, prefix string) ([]string, error) {
	u := &url.URL{Scheme: "http", Host: c.address, Path: "/api/v1/store/keys"}
	if prefix != "" {
		q := u.Query()
		q.Set("prefix", prefix)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed sending request: %w", err)
	}
	defer resp.Body.Close()

	keysResp := &types.StoreKeysResponse{}
	if err := decodeResponse(resp.Body, keysResp); err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(keysResp.Error)
	}

	return keysResp.Keys, nil
}

func (c *Client) Clear(ctx context.Context) error {
	u := &url.URL{Scheme: "http", Host: c.address, Path: "/api/v1/store/clear"}

	req, err := http.NewRequestWithContext(ctx, "POST", u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed creating request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("failed sending request: %w", err)
	}
	defer resp.Body.Close()

	clearResp := &types.StoreClearResponse{}
	if err := decodeResponse(resp.Body, clearResp); err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return errors.New(clearResp.Error)
	}

	return nil
}

func decodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed reading response body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed unmarshalling response body: %w", err)
	}
	return nil
}
