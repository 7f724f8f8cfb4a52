package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"scriptdesk/internal/api"
	"scriptdesk/internal/daemon"
	"scriptdesk/internal/logging"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, logger: logging.WithComponent(logger, "ipc"), ctx: ctx}
	if err := rpcServer.RegisterName("ScriptDesk", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
}

func (s *service) api() *api.Service {
	return s.daemon.API()
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status()
	resp.Running = status.Running
	resp.PID = status.PID
	resp.StartedAt = api.FormatTime(status.StartedAt)
	resp.SocketPath = status.SocketPath
	resp.LockPath = status.LockPath
	resp.PrefsDBPath = status.PrefsDBPath
	resp.TaskStats = status.TaskStats
	resp.Script = status.Script
	return nil
}

func (s *service) TaskAdd(req TaskAddRequest, resp *TaskAddResponse) error {
	view, err := s.api().AddTask(req.Task)
	if err != nil {
		return err
	}
	resp.Task = view
	return nil
}

func (s *service) TaskUpdate(req TaskUpdateRequest, resp *TaskUpdateResponse) error {
	view, err := s.api().UpdateTask(req.ID, req.Patch)
	if err != nil {
		return err
	}
	resp.Task = view
	return nil
}

func (s *service) TaskRemove(req TaskRemoveRequest, resp *TaskRemoveResponse) error {
	resp.Removed = s.api().RemoveTask(req.ID)
	return nil
}

func (s *service) TaskGet(req TaskGetRequest, resp *TaskGetResponse) error {
	view, err := s.api().GetTask(req.ID)
	if err != nil {
		return err
	}
	resp.Task = view
	return nil
}

func (s *service) TaskList(_ TaskListRequest, resp *TaskListResponse) error {
	resp.Tasks = s.api().ListTasks()
	return nil
}

func (s *service) TaskStats(_ TaskStatsRequest, resp *TaskStatsResponse) error {
	resp.Counts = s.api().TaskStats()
	return nil
}

func (s *service) ScriptLoad(req ScriptLoadRequest, resp *ScriptLoadResponse) error {
	if len(req.Document) == 0 {
		return errors.New("script load requires a document")
	}
	summary, err := s.api().LoadScript(req.Document)
	if err != nil {
		return err
	}
	resp.Summary = summary
	return nil
}

func (s *service) ScriptClear(_ ScriptClearRequest, resp *ScriptClearResponse) error {
	if err := s.api().ClearScript(); err != nil {
		return err
	}
	resp.Cleared = true
	return nil
}

func (s *service) ScriptShow(_ ScriptShowRequest, resp *ScriptShowResponse) error {
	resp.Document, resp.Summary = s.api().ShowScript()
	return nil
}

func (s *service) DialogueUpdate(req DialogueUpdateRequest, resp *DialogueUpdateResponse) error {
	view, err := s.api().UpdateDialogue(req.ClusterID, req.DialogueID, req.Patch)
	if err != nil {
		return err
	}
	resp.Dialogue = view
	return nil
}

func (s *service) ViewSelect(req ViewSelectRequest, _ *ViewSelectResponse) error {
	s.api().SelectCluster(req.ClusterID)
	return nil
}

func (s *service) ViewToggle(req ViewToggleRequest, resp *ViewToggleResponse) error {
	if req.ClusterID == "" {
		return errors.New("view toggle requires a cluster id")
	}
	svc := s.api()
	svc.ToggleCluster(req.ClusterID)
	for _, id := range svc.CurrentViewState().ExpandedClusters {
		if id == req.ClusterID {
			resp.Expanded = true
			break
		}
	}
	return nil
}

func (s *service) ViewExpandAll(_ ViewExpandAllRequest, resp *ViewExpandAllResponse) error {
	svc := s.api()
	svc.ExpandAll()
	resp.Expanded = len(svc.CurrentViewState().ExpandedClusters)
	return nil
}

func (s *service) ViewCollapseAll(_ ViewCollapseAllRequest, _ *ViewCollapseAllResponse) error {
	s.api().CollapseAll()
	return nil
}

func (s *service) ViewSearch(req ViewSearchRequest, _ *ViewSearchResponse) error {
	s.api().SetSearchQuery(req.Query)
	return nil
}

func (s *service) ViewState(_ ViewStateRequest, resp *ViewStateResponse) error {
	resp.State = s.api().CurrentViewState()
	return nil
}

func (s *service) PrefSet(req PrefSetRequest, _ *PrefSetResponse) error {
	return s.api().SetPref(s.ctx, req.Key, req.Value)
}

func (s *service) PrefGet(req PrefGetRequest, resp *PrefGetResponse) error {
	entry, err := s.api().GetPref(s.ctx, req.Key)
	if err != nil {
		return err
	}
	resp.Entry = entry
	return nil
}

func (s *service) PrefDelete(req PrefDeleteRequest, resp *PrefDeleteResponse) error {
	removed, err := s.api().DeletePref(s.ctx, req.Key)
	if err != nil {
		return err
	}
	resp.Removed = removed
	return nil
}

func (s *service) PrefList(_ PrefListRequest, resp *PrefListResponse) error {
	entries, err := s.api().ListPrefs(s.ctx)
	if err != nil {
		return err
	}
	resp.Entries = entries
	return nil
}
