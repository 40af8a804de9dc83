// Package lpirl implements linear-programming inverse reinforcement
// learning for finite MDPs, after Ng & Abbeel (ICML 2000): given an ordered
// state set, an ordered action set, a transition model, a discount factor
// and an observed deterministic stationary policy, it recovers a per-state
// reward function under which that policy is optimal.
//
// 🚀 How it works
//
//	Let Tπ be the n×n chain the policy induces, and T¬π[i] the chain induced
//	by deviating to the i-th non-policy action at every state. The policy is
//	optimal for reward R exactly when
//
//	  (Tπ − T¬π[i]) · (I − γ·Tπ)⁻¹ · R ≥ 0   for every deviation i.
//
//	Those (k−1)·n inequalities alone admit the degenerate solution R ≡ 0, so
//	the LP objective is augmented twice:
//
//	  • costly single step — maximize the minimal per-state margin by which
//	    the policy's action beats every alternative (epigraph variables);
//	  • L1 regularization — penalize Σ|Rᵢ| with weight l1 to prefer sparse
//	    rewards (the chosen encoding also forces Rᵢ ≥ 0).
//
//	Together with per-state bounds Rᵢ ≤ Rmax this yields one inequality-form
//	LP, solved via gonum's simplex after standard-form conversion. The exact
//	optimum often sits at the shapeless R ≡ 0 vertex, so a tie-breaking
//	re-solve over the near-optimal set then picks the point with maximal
//	total reward — the same points interior-point methods report. The first
//	n entries of that point are min-max rescaled into [0, Rmax].
//
// ⚙️ Usage:
//
//	space, _ := mdp.NewSpace([]string{"s0", "s1"}, []string{"b", "o"})
//	model, _ := mdp.NewTransitionModel(space, rows)
//	policy := mdp.Policy{"s0": "b", "s1": "o"}
//
//	res, err := lpirl.Solve(model, policy, lpirl.DefaultOptions())
//	if err != nil {
//	  // errors.Is against the package sentinels
//	}
//	fmt.Println(res.Reward) // aligned with space.States(), each in [0, Rmax]
//
// Variable layout of the assembled LP, left to right: the n true reward
// variables always occupy columns 0..n−1, followed by n margin variables
// (absent when k=1) and n absolute-value surrogates.
//
// The computation is fully synchronous and stateless between calls; every
// intermediate matrix is local to one Solve.
package lpirl
