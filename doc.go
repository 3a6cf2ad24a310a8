// Package tutor provides the action execution and session management
// engine of an interactive learning application.
//
// A curriculum document declares sessions, lessons and the actions a
// learner can trigger. The engine routes each action to a sandboxed
// interpreter backend, a pool of named host-process terminal sessions or
// one of the side-channels (browser, file viewer, notifications), and
// renders every command run into an append-only formatted transcript.
//
// End-users interact with the engine via the high-level Service façade
// exposed by the root package:
//
//	srv := tutor.New(tutor.WithMetaBaseURL("file:///lessons"))
//	rt := srv.Runtime()
//	curriculum := rt.LoadCurriculum(ctx, "curriculum.yaml")
//	_ = rt.Execute(ctx, curriculum.Sessions[0].Lessons[0].Actions[0])
//
// For more details see the README and individual sub-packages.
package tutor
