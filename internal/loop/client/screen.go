package client

import (
	"fmt"
	"time"

	"github.com/tomz197/blaster/internal/draw"
	"github.com/tomz197/blaster/internal/loop/config"
)

// leaderboardSize is how many connected players the game over screen lists.
const leaderboardSize = 5

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On view or inactivity transitions, do a full terminal clear
	// so UI elements from the previous view don't persist on screen.
	view := c.view()
	viewChanged := view != c.state.prevView
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if viewChanged || inactiveChanged {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevView = view
		c.state.wasInactive = c.state.isInactive
	}

	// Render canvas to terminal. Only the playing view changes it; the
	// other views show the last frame underneath their text.
	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}

	// Draw UI overlay
	c.drawUI(view)

	return c.chunkWriter.Flush()
}

// drawUI draws the text overlay for the current view.
func (c *Client) drawUI(view View) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if view == ViewShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch view {
	case ViewPlaying:
		c.drawPlayingHUD(termWidth, termHeight)
	case ViewStart:
		c.drawStartScreen(centerX, centerY)
	case ViewOver:
		c.drawOverScreen(centerX, centerY)
	}
}

// writeCentered writes s centred on column centerX.
func (c *Client) writeCentered(centerX, row int, s string) {
	c.chunkWriter.WriteAt(centerX-len(s)/2, row, s)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg)
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		` ___  _       _    ___  _____  ___  ___ `,
		`| _ )| |     /_\  / __||_   _|| __|| _ \`,
		`| _ \| |__  / _ \ \__ \  | |  | _| |   /`,
		`|___/|____|/_/ \_\|___/  |_|  |___||_|_\`,
		`                                        `,
	}

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	c.writeCentered(centerX, titleStartY+len(titleArt)+1, "~ Hold the centre. Shoot what comes. ~")

	// Controls section
	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, "Controls")

	controlLines := []string{
		"Mouse click  . . . . . Fire",
		"SPACE / click  . . .  Start",
		"Q  . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	} else {
		c.writeCentered(centerX, controlsY+len(controlLines)+2, "                            ")
	}

	c.writeCentered(centerX, controlsY+len(controlLines)+4, "Your terminal needs mouse support to aim.")
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (since we no longer clear every frame).
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	cw := c.chunkWriter
	// Score display (top left), left-aligned and padded to 8 digits
	scoreText := fmt.Sprintf("Score: %-8d", c.game.Score())
	cw.WriteString(draw.StyleBold)
	cw.WriteAt(2, 1, scoreText)
	cw.WriteString(draw.ColorReset)

	// Live players (bottom right)
	livePlayersText := fmt.Sprintf("Players: %-4d", c.server.Players())
	cw.WriteAt(termWidth-len(livePlayersText)-1, termHeight, livePlayersText)

	// Session time (bottom left)
	elapsed := c.game.Elapsed().Truncate(time.Second)
	cw.WriteAt(2, termHeight, fmt.Sprintf("Time: %-8s", elapsed))
}

// drawOverScreen draws the game over screen over the frozen last frame.
func (c *Client) drawOverScreen(centerX, centerY int) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	cw := c.chunkWriter
	titleStartY := centerY - 8
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	row := titleStartY + len(titleArt) + 1
	c.writeCentered(centerX, row, fmt.Sprintf(" Final score: %d ", c.game.FinalScore()))

	// Leaderboard of connected players
	if top := c.server.TopScores(leaderboardSize); len(top) > 1 {
		row += 2
		c.writeCentered(centerX, row, "Best on this server")
		for i, entry := range top {
			name := entry.Username
			if name == "" {
				name = "anonymous"
			}
			line := fmt.Sprintf("%d. %-16.16s %8d", i+1, name, entry.Score)
			c.writeCentered(centerX, row+1+i, line)
		}
		row += len(top)
	}

	prompt := "                               "
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt = ">>  Press SPACE to Restart  <<"
	}
	c.writeCentered(centerX, row+2, prompt)
	c.writeCentered(centerX, row+3, "Q to quit")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
