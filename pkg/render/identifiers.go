package render

import "novac/pkg/output"

// CoreModule is the runtime module every generated definition imports from.
const CoreModule = "@nova/core"

// Well-known runtime symbols. The lowering functions reference these; the
// emitter resolves them to import aliases.
var (
	// defineModule(def) — registers a module definition. Pure.
	DefineModule = output.ExternalReference{ModuleName: CoreModule, Name: "defineModule"}

	// setModuleScope(type, scope) — JIT-only registration of a module's
	// declarations/imports/exports, split out of the definition object so the
	// referenced classes stay tree-shakeable.
	SetModuleScope = output.ExternalReference{ModuleName: CoreModule, Name: "setModuleScope"}

	// ModuleDeclaration<T, Declarations, Imports, Exports> — the type of a
	// module definition with full scope metadata.
	ModuleDeclaration = output.ExternalReference{ModuleName: CoreModule, Name: "ModuleDeclaration"}

	// defineInjector(def) — registers an injector definition. Pure.
	DefineInjector = output.ExternalReference{ModuleName: CoreModule, Name: "defineInjector"}

	// InjectorDeclaration<T> — the type of an injector definition.
	InjectorDeclaration = output.ExternalReference{ModuleName: CoreModule, Name: "InjectorDeclaration"}
)

// jitModeFlag is the process-wide global consulted by guarded registrations.
// Generated code must tolerate the flag being entirely undefined (AOT bundles
// never define it), hence the typeof check in jitOnlyGuardedExpression.
const jitModeFlag = "nvJitMode"
