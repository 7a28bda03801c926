package asset

// MatchFSMConfig is the match lifecycle graph loaded by systems.MatchSystem
// Waiting holds the idle timer: armed on entry, disarmed when a countdown starts
const MatchFSMConfig = `
initial = "Joining"

# === Waiting for players ===

[states.Waiting]
on_enter = [
    { action = "ArmIdleTimer" },
]
on_exit = [
    { action = "DisarmIdleTimer" },
]

[states.Lobby]
parent = "Waiting"

[states.Joining]
parent = "Lobby"
on_enter = [
    { action = "PrepareLobby" },
]
transitions = [
    { trigger = "EventPlayerJoined", target = "Armed", guard = "EnoughPlayers" },
]

[states.Armed]
parent = "Lobby"
transitions = [
    { trigger = "EventStartRequest", target = "CountdownRed" },
]

[states.ClearOffer]
parent = "Waiting"
on_enter = [
    { action = "EmitEvent", event = "EventClearOffered" },
]
transitions = [
    { trigger = "EventWinsCleared", target = "Joining", guard = "WinsBelowTarget" },
]

# === Countdown: red, yellow, then green starts the round ===

[states.Countdown]
on_enter = [
    { action = "StartRound" },
]

[states.CountdownRed]
parent = "Countdown"
on_enter = [
    { action = "EmitEvent", event = "EventCountdownRed" },
    { action = "ScheduleCountdown" },
]
transitions = [
    { trigger = "EventCountdownElapsed", target = "CountdownYellow" },
]

[states.CountdownYellow]
parent = "Countdown"
on_enter = [
    { action = "EmitEvent", event = "EventCountdownYellow" },
    { action = "ActivateItems" },
    { action = "ScheduleCountdown" },
]
transitions = [
    { trigger = "EventCountdownElapsed", target = "Green" },
]

# === Active round: cycles step every tick ===

[states.Active]
transitions = [
    { trigger = "EventRoundDecided", target = "RoundEnd" },
]

[states.Green]
parent = "Active"
on_enter = [
    { action = "EmitEvent", event = "EventCountdownGreen" },
]
transitions = [
    { trigger = "Tick", target = "Running", guard = "StateTimeExceeds", guard_args = { ms = 1000 } },
]

[states.Running]
parent = "Active"

# === Round end: items off, survivors removed after the delay ===

[states.RoundEnd]
on_enter = [
    { action = "DeactivateItems" },
    { action = "ScheduleRoundReset" },
]
on_exit = [
    { action = "ResetRound" },
]
transitions = [
    { trigger = "EventRoundReset", target = "ClearOffer", guard = "WinTargetReached" },
    { trigger = "EventRoundReset", target = "Joining" },
]
`
