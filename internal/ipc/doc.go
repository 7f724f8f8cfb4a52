// Package ipc exposes the daemon over JSON-RPC on a Unix domain socket.
//
// It owns socket lifecycle management and the request/response DTOs. The
// server registers one service named "ScriptDesk"; the Client wraps every
// method with a typed call so CLI code never touches rpc plumbing directly.
//
// Reuse these types when adding new RPC endpoints to keep the protocol stable
// and compatible with existing command implementations.
package ipc
