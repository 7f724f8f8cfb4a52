package ipc

import (
	"encoding/json"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("ScriptDesk.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskAdd registers a new task.
func (c *Client) TaskAdd(req TaskAddRequest) (*TaskAddResponse, error) {
	var resp TaskAddResponse
	if err := c.client.Call("ScriptDesk.TaskAdd", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskUpdate applies a partial update to a task.
func (c *Client) TaskUpdate(req TaskUpdateRequest) (*TaskUpdateResponse, error) {
	var resp TaskUpdateResponse
	if err := c.client.Call("ScriptDesk.TaskUpdate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskRemove deletes a task by ID.
func (c *Client) TaskRemove(id string) (*TaskRemoveResponse, error) {
	var resp TaskRemoveResponse
	if err := c.client.Call("ScriptDesk.TaskRemove", TaskRemoveRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskGet returns details for a single task.
func (c *Client) TaskGet(id string) (*TaskGetResponse, error) {
	var resp TaskGetResponse
	if err := c.client.Call("ScriptDesk.TaskGet", TaskGetRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskList returns every tracked task.
func (c *Client) TaskList() (*TaskListResponse, error) {
	var resp TaskListResponse
	if err := c.client.Call("ScriptDesk.TaskList", TaskListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TaskStats returns per-status task counts.
func (c *Client) TaskStats() (*TaskStatsResponse, error) {
	var resp TaskStatsResponse
	if err := c.client.Call("ScriptDesk.TaskStats", TaskStatsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScriptLoad swaps in a complete script document.
func (c *Client) ScriptLoad(document json.RawMessage) (*ScriptLoadResponse, error) {
	var resp ScriptLoadResponse
	if err := c.client.Call("ScriptDesk.ScriptLoad", ScriptLoadRequest{Document: document}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScriptClear removes the loaded document.
func (c *Client) ScriptClear() (*ScriptClearResponse, error) {
	var resp ScriptClearResponse
	if err := c.client.Call("ScriptDesk.ScriptClear", ScriptClearRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScriptShow fetches the loaded document and its summary.
func (c *Client) ScriptShow() (*ScriptShowResponse, error) {
	var resp ScriptShowResponse
	if err := c.client.Call("ScriptDesk.ScriptShow", ScriptShowRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DialogueUpdate edits a single dialogue line.
func (c *Client) DialogueUpdate(req DialogueUpdateRequest) (*DialogueUpdateResponse, error) {
	var resp DialogueUpdateResponse
	if err := c.client.Call("ScriptDesk.DialogueUpdate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ViewSelect records the selected cluster; an empty ID clears the selection.
func (c *Client) ViewSelect(clusterID string) error {
	var resp ViewSelectResponse
	return c.client.Call("ScriptDesk.ViewSelect", ViewSelectRequest{ClusterID: clusterID}, &resp)
}

// ViewToggle flips a cluster's expansion state.
func (c *Client) ViewToggle(clusterID string) (*ViewToggleResponse, error) {
	var resp ViewToggleResponse
	if err := c.client.Call("ScriptDesk.ViewToggle", ViewToggleRequest{ClusterID: clusterID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ViewExpandAll expands every cluster in the current document.
func (c *Client) ViewExpandAll() (*ViewExpandAllResponse, error) {
	var resp ViewExpandAllResponse
	if err := c.client.Call("ScriptDesk.ViewExpandAll", ViewExpandAllRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ViewCollapseAll collapses every cluster.
func (c *Client) ViewCollapseAll() error {
	var resp ViewCollapseAllResponse
	return c.client.Call("ScriptDesk.ViewCollapseAll", ViewCollapseAllRequest{}, &resp)
}

// ViewSearch stores the view's search text.
func (c *Client) ViewSearch(query string) error {
	var resp ViewSearchResponse
	return c.client.Call("ScriptDesk.ViewSearch", ViewSearchRequest{Query: query}, &resp)
}

// ViewState fetches selection, expansion, and search state.
func (c *Client) ViewState() (*ViewStateResponse, error) {
	var resp ViewStateResponse
	if err := c.client.Call("ScriptDesk.ViewState", ViewStateRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PrefSet stores a preference.
func (c *Client) PrefSet(key, value string) error {
	var resp PrefSetResponse
	return c.client.Call("ScriptDesk.PrefSet", PrefSetRequest{Key: key, Value: value}, &resp)
}

// PrefGet fetches a stored preference.
func (c *Client) PrefGet(key string) (*PrefGetResponse, error) {
	var resp PrefGetResponse
	if err := c.client.Call("ScriptDesk.PrefGet", PrefGetRequest{Key: key}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PrefDelete removes a preference.
func (c *Client) PrefDelete(key string) (*PrefDeleteResponse, error) {
	var resp PrefDeleteResponse
	if err := c.client.Call("ScriptDesk.PrefDelete", PrefDeleteRequest{Key: key}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PrefList lists every stored preference.
func (c *Client) PrefList() (*PrefListResponse, error) {
	var resp PrefListResponse
	if err := c.client.Call("ScriptDesk.PrefList", PrefListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
