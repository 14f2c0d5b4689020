// Package server exposes the agent hooks over HTTP.
//
// Routes:
//
//	POST   /v1/games           preprocessing; body {width, height, maze, position, cheese}
//	                            → 201 {"id": "<uuid>"}
//	POST   /v1/games/:id/turn  turn; body {position, cheese, maze?}
//	                            → 200 {"action": "north"}
//	DELETE /v1/games/:id       postprocessing → 200 Stats
//	GET    /healthz            → 200 {"status": "ok"}
//
// maze is either a JSON object of adjacency maps ({"0": {"1": 1}, ...}) or a
// square weight matrix ([[0, 1], [1, 0]]). Malformed input yields 400 with
// {"error": "..."}; an unknown game id yields 404.
//
// Sessions are independent; each is guarded by its own mutex.
package server
