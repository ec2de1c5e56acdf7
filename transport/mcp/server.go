package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/monster-chase/game/engine"
	"github.com/wricardo/monster-chase/game/service"
)

const instructions = `Monster Chase - MCP Interface

GAME OBJECTIVE:
Steer the monster (M) onto the target (T). The board is shown once, then
hidden: you submit the whole path from memory. Landing on the target scores a
point and spawns a new target. Ending anywhere else ends the game.

AVAILABLE TOOLS:
- new_game: Start a new game and reveal the board
- board: Show the current game (hidden by default)
- submit_path: Play one turn with a path of w/a/s/d keys
- history: List resolved turns
- instructions: Full rules`

// Server exposes a game service as MCP tools
type Server struct {
	service   service.GameService
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server over gameService
func NewServer(gameService service.GameService, version string) *Server {
	s := &Server{service: gameService}

	s.mcpServer = server.NewMCPServer(
		"Monster Chase",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
	)
	s.registerTools()
	return s
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the stream closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new game. The returned board is the only full view before your first path.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "board",
		Description: "Show the current game. The board is hidden unless reveal is true.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"reveal": map[string]interface{}{
					"type":        "boolean",
					"description": "Show monster and target positions (default false)",
				},
			},
		},
	}, s.handleBoard)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_path",
		Description: "Play one turn. Keys: w=up, s=down, a=left, d=right. Moves off the edge are ignored; other characters are reported and skipped.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Sequence of w/a/s/d keys, e.g. \"ddw\"",
				},
			},
			Required: []string{"path"},
		},
	}, s.handleSubmitPath)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "history",
		Description: "List the resolved turns of the current game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "instructions",
		Description: "Get the complete game rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleInstructions)
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

func toolError(err error) *mcp.CallToolResult {
	if errors.Is(err, service.ErrNoGame) {
		return mcp.NewToolResultError("No game in progress. Call new_game first.")
	}
	if errors.Is(err, engine.ErrGameOver) {
		return mcp.NewToolResultError("The game is over. Call new_game to play again.")
	}
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.service.NewGame(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText("New game started. Memorize the board.\n\n" + formatGameInfo(info)), nil
}

func (s *Server) handleBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reveal, _ := arguments(request)["reveal"].(bool)

	info, err := s.service.State(ctx, !reveal)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(formatGameInfo(info)), nil
}

func (s *Server) handleSubmitPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := arguments(request)["path"].(string)
	if !ok {
		return mcp.NewToolResultError("path is required"), nil
	}

	report, err := s.service.SubmitPath(ctx, path)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(formatTurnReport(report)), nil
}

func (s *Server) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := s.service.History(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := fmt.Sprintf(`Monster Chase - Complete Instructions

BOARD:
A %dx%d grid. Row 0 is the top, column 0 is the left edge.
• M - Monster (you)
• T - Target
• x - Footprint left where the game ended
• . - Empty

TURN:
1. The full board is shown.
2. The board is hidden (every cell shows ".").
3. You submit a path of keys: w=up, s=down, a=left, d=right.
4. Each step moves the monster one cell. A step off the edge is ignored.
   Any other character is reported as unrecognized and skipped.
5. If the monster ends the path on the target you score a point and a new
   target appears on a random empty cell. The next turn starts.
   Passing over the target mid-path does not count.
6. Otherwise the game is over.

STRATEGY:
• Count rows and columns from the revealed board before submitting.
• An empty path always misses.`, engine.Rows, engine.Cols)

	return mcp.NewToolResultText(rules), nil
}

func formatBoard(board engine.Board) string {
	var b strings.Builder
	for _, row := range board.Rows {
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func formatGameInfo(info *service.GameInfo) string {
	if info == nil {
		return "No game state available"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Game: %s | Score: %d | Turns: %d | Phase: %s\n",
		info.ID, info.Score, info.Turns, info.Phase))
	if info.Monster != nil {
		result.WriteString(fmt.Sprintf("Monster: %s", info.Monster))
		if info.Target != nil {
			result.WriteString(fmt.Sprintf(" | Target: %s", info.Target))
		}
		result.WriteString("\n")
	}
	if info.Board.Hidden {
		result.WriteString("(board hidden)\n")
	}
	result.WriteString("\n")
	result.WriteString(formatBoard(info.Board))

	if len(info.PossibleMoves) > 0 {
		result.WriteString(fmt.Sprintf("\nPossible moves: %s\n", strings.Join(info.PossibleMoves, ", ")))
	}
	if info.GameOver {
		result.WriteString("\nGAME OVER :(\n")
	}
	return result.String()
}

func formatTurnReport(report *service.TurnReport) string {
	turn := report.Turn

	var result strings.Builder
	switch turn.Outcome {
	case engine.OutcomeCapture:
		result.WriteString(fmt.Sprintf("Turn %d: capture! Score: %d\n", turn.Number, turn.Score))
	default:
		result.WriteString(fmt.Sprintf("Turn %d: miss. Final score: %d\n", turn.Number, turn.Score))
	}
	result.WriteString(fmt.Sprintf("Path: %q | Steps: %d | Blocked: %d | Ended at %s\n",
		turn.Path, turn.Steps, turn.Blocked, turn.Final))

	for _, warning := range report.Warnings {
		result.WriteString("Unrecognized command! " + warning + "\n")
	}

	result.WriteString("\n")
	result.WriteString(formatGameInfo(report.Game))
	return result.String()
}

func formatHistory(history []engine.TurnResult) string {
	if len(history) == 0 {
		return "No turns played yet"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Turn History - Total: %d\n\n", len(history)))
	for _, turn := range history {
		status := "✓"
		if turn.Outcome != engine.OutcomeCapture {
			status = "✗"
		}
		result.WriteString(fmt.Sprintf("%d. %q %s %s -> %s [Score: %d]\n",
			turn.Number, turn.Path, status, turn.Origin, turn.Final, turn.Score))
	}
	return result.String()
}
