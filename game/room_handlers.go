package game

import "encoding/json"

func (r *Room) handleJoinRequest(req RoomJoinRequest) {
	if r.state != StateWaiting {
		req.errChan <- ErrGameInProgress
		return
	}
	if len(r.players) >= r.cfg.MaxPlayers {
		req.errChan <- ErrRoomFull
		return
	}

	req.player.room = r
	r.players = append(r.players, req.player)
	req.errChan <- nil

	r.log.Info().Str("player", req.player.name).Msg("player joined")
	r.broadcastRoomUpdate()
}

func (r *Room) handleLeave(p *Player) {
	if r.findPlayer(p.id) == nil {
		return
	}
	r.removePlayer(p.id)
	p.close()

	r.log.Info().Str("player", p.name).Msg("player left")
	if len(r.players) == 0 {
		return
	}

	if r.hostID == p.id {
		r.hostID = r.players[0].id
		r.players[0].isHost = true
	}

	r.broadcast(PacketPlayerLeft, PlayerLeftData{
		PlayerID:   p.id,
		PlayerName: p.name,
		Room:       r.snapshot(),
	})
}

func (r *Room) removePlayer(id string) {
	for i, p := range r.players {
		if p.id == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return
		}
	}
}

func (r *Room) handleToggleReady(p *Player) {
	p.isReady = !p.isReady
	r.broadcastRoomUpdate()
}

func (r *Room) handleStartGame(p *Player) {
	if p.id != r.hostID {
		r.send(p, PacketStartGameResult, Ack{Error: ErrNotHost.Error()})
		return
	}
	if r.state != StateWaiting {
		r.send(p, PacketStartGameResult, Ack{Error: ErrGameInProgress.Error()})
		return
	}
	if len(r.players) < r.cfg.MinPlayers {
		r.send(p, PacketStartGameResult, Ack{Error: ErrNotEnoughPlayers.Error()})
		return
	}
	for _, other := range r.players {
		if !other.isHost && !other.isReady {
			r.send(p, PacketStartGameResult, Ack{Error: ErrPlayersNotReady.Error()})
			return
		}
	}

	r.bag = NewBag()
	deal := tilesPerPlayer(len(r.players))
	for _, player := range r.players {
		player.tiles = player.tiles[:0]
		player.boardTiles = nil
		// Greedy deal in join order; stops early if the bag empties.
		for _, letter := range r.bag.Draw(deal) {
			player.tiles = append(player.tiles, Tile{ID: r.tileIDs.next("start"), Letter: letter})
		}
	}
	r.state = StatePlaying

	r.send(p, PacketStartGameResult, Ack{Success: true})
	r.log.Info().Int("players", len(r.players)).Int("remaining", r.bag.Remaining()).Msg("game started")

	// Two-phase start: the full deal first, then the waiting->playing
	// room snapshot. Only the ordering matters to clients.
	r.broadcast(PacketGameStart, GameStartData{
		Players:   r.playerStates(),
		Remaining: r.bag.Remaining(),
	})
	r.broadcastRoomUpdate()
}

func (r *Room) handlePeel(p *Player) {
	if r.state != StatePlaying {
		r.send(p, PacketPeelResult, PeelResult{Error: ErrGameNotStarted.Error()})
		return
	}
	if len(p.HandTiles()) > 0 {
		r.send(p, PacketPeelResult, PeelResult{Error: ErrStillHasTiles.Error()})
		return
	}

	// The game ends the moment the bag cannot supply one tile per player,
	// not when it is literally empty.
	if r.bag.Remaining() < len(r.players) {
		r.state = StateFinished
		r.send(p, PacketPeelResult, PeelResult{Success: true, Won: true})
		r.log.Info().Str("winner", p.name).Msg("game won")
		r.broadcast(PacketGameWon, GameWonData{WinnerID: p.id, WinnerName: p.name})
		return
	}

	// Computed before dealing: true when the bag cannot cover a further peel.
	isLastRound := r.bag.Remaining() < len(r.players)*2

	for _, player := range r.players {
		letter, ok := r.bag.DrawOne()
		if !ok {
			break
		}
		player.tiles = append(player.tiles, Tile{ID: r.tileIDs.next("peel"), Letter: letter})
	}

	r.send(p, PacketPeelResult, PeelResult{Success: true})
	r.broadcast(PacketPeelCalled, PeelCalledData{
		CallerName:  p.name,
		Players:     r.playerStates(),
		Remaining:   r.bag.Remaining(),
		IsLastRound: isLastRound,
	})
	r.broadcastRoomUpdate()
}

func (r *Room) handleDump(env packetEnvelope) {
	p := env.from
	if r.state != StatePlaying {
		r.send(p, PacketDumpResult, DumpResult{Error: ErrGameNotStarted.Error()})
		return
	}

	var req DumpRequest
	if err := json.Unmarshal(env.packet.Data, &req); err != nil {
		r.send(p, PacketDumpResult, DumpResult{Error: "malformed dump request"})
		return
	}

	traded, ok := p.handTile(req.TileID)
	if !ok {
		r.send(p, PacketDumpResult, DumpResult{Error: ErrTileNotFound.Error()})
		return
	}
	if r.bag.Remaining() < 3 {
		r.send(p, PacketDumpResult, DumpResult{Error: ErrBagTooSmall.Error()})
		return
	}

	// The traded id is retired for good; the replacements get fresh ids.
	p.removeTile(traded.ID)
	r.bag.Return(traded.Letter)

	newTiles := make([]Tile, 0, 3)
	for _, letter := range r.bag.Draw(3) {
		newTiles = append(newTiles, Tile{ID: r.tileIDs.next("dump"), Letter: letter})
	}
	p.tiles = append(p.tiles, newTiles...)

	r.send(p, PacketDumpResult, DumpResult{Success: true, NewTiles: newTiles})
	r.broadcast(PacketPlayerDumped, PlayerDumpedData{
		PlayerID:   p.id,
		PlayerName: p.name,
		Remaining:  r.bag.Remaining(),
	})
	r.broadcastRoomUpdate()
}

func (r *Room) handleUpdateBoard(env packetEnvelope) {
	p := env.from
	if r.state != StatePlaying {
		return
	}

	var req UpdateBoardRequest
	if err := json.Unmarshal(env.packet.Data, &req); err != nil {
		return
	}

	p.boardTiles = req.BoardTiles

	// The sender already has this layout locally; only the rest of the
	// room needs the update.
	r.broadcastExcept(p, PacketPlayerBoardUpdate, PlayerBoardUpdateData{
		PlayerID:   p.id,
		PlayerName: p.name,
		BoardTiles: p.boardTiles,
		HandSize:   p.HandSize(),
		BoardSize:  p.BoardSize(),
	})
}

// handleUpdateHandSize rebroadcasts a client-reported count for quick UI
// feedback. Authoritative state is untouched: every roomUpdate recomputes
// counts from tile ownership, so a lying client only skews this one event.
func (r *Room) handleUpdateHandSize(env packetEnvelope) {
	p := env.from
	if r.state != StatePlaying {
		return
	}

	var req UpdateHandSizeRequest
	if err := json.Unmarshal(env.packet.Data, &req); err != nil {
		return
	}

	r.broadcast(PacketPlayerHandUpdate, PlayerHandUpdateData{
		PlayerID:   p.id,
		PlayerName: p.name,
		HandSize:   req.HandSize,
	})
}

// handleUpdateTileLocations acknowledges client-side tile moves between hand
// and board. The broadcast count is recomputed from what the server knows,
// not from the reported deltas.
func (r *Room) handleUpdateTileLocations(env packetEnvelope) {
	p := env.from
	if r.state != StatePlaying {
		return
	}

	var req UpdateTileLocationsRequest
	if err := json.Unmarshal(env.packet.Data, &req); err != nil {
		return
	}

	r.broadcast(PacketPlayerHandUpdate, PlayerHandUpdateData{
		PlayerID:   p.id,
		PlayerName: p.name,
		HandSize:   p.HandSize(),
	})
}

func (r *Room) handleGetPlayerDetails(env packetEnvelope) {
	p := env.from
	if r.state != StatePlaying {
		r.send(p, PacketGetPlayerDetailsResult, PlayerDetails{Error: ErrGameNotStarted.Error()})
		return
	}

	var req GetPlayerDetailsRequest
	if err := json.Unmarshal(env.packet.Data, &req); err != nil {
		r.send(p, PacketGetPlayerDetailsResult, PlayerDetails{Error: "malformed request"})
		return
	}

	target := r.findPlayerByName(req.PlayerName)
	if target == nil {
		r.send(p, PacketGetPlayerDetailsResult, PlayerDetails{Error: ErrPlayerNotFound.Error()})
		return
	}

	hand := target.HandTiles()
	letters := make([]string, 0, len(hand))
	for _, t := range hand {
		letters = append(letters, t.Letter)
	}

	r.send(p, PacketGetPlayerDetailsResult, PlayerDetails{
		Success:     true,
		PlayerName:  target.name,
		TilesInHand: letters,
		BoardTiles:  target.boardTiles,
		HandSize:    len(hand),
		BoardSize:   target.BoardSize(),
	})
}

func (r *Room) handleKickPlayer(env packetEnvelope) {
	p := env.from
	if p.id != r.hostID {
		r.send(p, PacketKickPlayerResult, Ack{Error: ErrNotHost.Error()})
		return
	}
	if r.state != StateWaiting {
		r.send(p, PacketKickPlayerResult, Ack{Error: ErrGameInProgress.Error()})
		return
	}

	var req KickPlayerRequest
	if err := json.Unmarshal(env.packet.Data, &req); err != nil {
		r.send(p, PacketKickPlayerResult, Ack{Error: "malformed request"})
		return
	}
	if req.PlayerID == p.id {
		r.send(p, PacketKickPlayerResult, Ack{Error: ErrCannotKickSelf.Error()})
		return
	}

	target := r.findPlayer(req.PlayerID)
	if target == nil {
		r.send(p, PacketKickPlayerResult, Ack{Error: ErrPlayerNotFound.Error()})
		return
	}

	r.removePlayer(target.id)

	// The kicked client hears about it directly before the room does.
	r.send(target, PacketKicked, KickedData{Reason: "You have been kicked from the room by the host"})
	target.close()

	r.send(p, PacketKickPlayerResult, Ack{Success: true})
	r.log.Info().Str("player", target.name).Msg("player kicked")
	r.broadcast(PacketPlayerKicked, PlayerKickedData{PlayerID: target.id, PlayerName: target.name})
	r.broadcastRoomUpdate()
}
