// Package solver is the single entry point over all knapsack drivers.
//
// Solve routes a catalog and capacity to the driver named by
// Config.Algorithm:
//
//	greedy   greedy.Construct
//	local    localsearch.Solve (greedy start + swap local search)
//	grasp    grasp.Solve
//	tabu     tabu.Solve
//	scatter  scatter.Solve
//
// Config carries the Options of every driver, so one file can describe a
// whole experiment. It round-trips through YAML (LoadConfig, MarshalConfig);
// keys follow the json tags of the driver Options and unknown keys are
// rejected. Fields missing from a file keep their DefaultConfig values.
//
// Config.Verbose, Config.Logger and Config.OnIteration are forwarded to the
// selected driver, overriding the per-driver values.
package solver
