package asset

// IdleDemoScript is the built-in attract mode script
// Route starts are grid offsets from the arena center; every scripted cycle starts heading up
// Each route entry is [steps, turn]: turn 1 is left, -1 right, 0 ends the run
const IdleDemoScript = `
[[routes]]
slot = 0
start = [-30, 8]
route = [[14, -1], [20, -1], [10, 1], [8, 0]]

[[routes]]
slot = 1
start = [30, 8]
route = [[14, 1], [20, 1], [10, -1], [8, 0]]

[[routes]]
slot = 3
start = [-4, 10]
route = [[3, -1], [8, 1], [2, 1], [12, 1], [2, 0]]

[[about]]
slot = 2
size = 1
text = "T R O F F"

[[about]]
slot = 3
size = 1
text = "press 1-4 to join, enter to start"
`
