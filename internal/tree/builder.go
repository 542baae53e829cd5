// Package tree builds the sequential-stage decision tree used for
// explanation and visualization. The tree's branch probabilities are
// hand-specified conditional rates for narrative purposes only; the
// numeric expected-value and simulation paths use the scenario catalog,
// whose probabilities intentionally differ (see internal/scenario).
package tree

import "litigation-strategy-lab/internal/domain"

// Node is one procedural stage. Built fresh per analysis, never mutated
// after construction. Value is non-nil only on terminal outcomes.
type Node struct {
	Action      string
	Probability float64
	Cost        float64
	TimeDays    int
	Value       *float64
	Children    []*Node
}

// IsTerminal reports whether the node carries a terminal outcome value.
func (n *Node) IsTerminal() bool {
	return n.Value != nil
}

// Depth returns the number of levels in the subtree rooted at n.
func (n *Node) Depth() int {
	max := 0
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Static conditional branch rates. Zero-probability branches are kept
// for completeness so the rendered tree always shows every path.
const (
	noResponseRate       = 0.15
	contestedRate        = 0.85
	earlyTalksRate       = 0.30
	discoveryRate        = 0.70
	midSettlementRate    = 0.40
	dispositiveRate      = 0.60
	motionGrantedRate    = 0.25
	motionDeniedRate     = 0.75
	lastMinuteSettleRate = 0.50
	proceedToTrialRate   = 0.50
)

// Build constructs the five-level tree rooted at filing the complaint.
// Deterministic and side-effect-free: identical inputs produce a
// structurally identical tree. caseStrength must already be clamped.
func Build(d domain.DamagesRange, caseStrength int) *Node {
	cs := float64(caseStrength) / 10.0
	trialWinRate := cs * 0.75

	return &Node{
		Action:      "file complaint",
		Probability: 1.0,
		Cost:        500,
		Children: []*Node{
			{
				Action:      "respondent defaults",
				Probability: noResponseRate,
				Cost:        2_000,
				TimeDays:    90,
				Value:       value(d.Recommended),
			},
			{
				Action:      "respondent answers",
				Probability: contestedRate,
				Cost:        1_500,
				TimeDays:    30,
				Children: []*Node{
					{
						Action:      "early settlement talks",
						Probability: earlyTalksRate,
						Cost:        3_000,
						TimeDays:    90,
						Value:       value(d.Conservative),
					},
					{
						Action:      "discovery",
						Probability: discoveryRate,
						Cost:        10_000,
						TimeDays:    150,
						Children: []*Node{
							{
								Action:      "settlement after discovery",
								Probability: midSettlementRate,
								Cost:        2_000,
								TimeDays:    30,
								Value:       value(0.85 * d.Recommended),
							},
							{
								Action:      "dispositive motion",
								Probability: dispositiveRate,
								Cost:        8_000,
								TimeDays:    60,
								Children: []*Node{
									{
										Action:      "motion granted",
										Probability: motionGrantedRate,
										Cost:        0,
										TimeDays:    30,
										Value:       value(0.90 * d.Aggressive),
									},
									{
										Action:      "motion denied",
										Probability: motionDeniedRate,
										Cost:        0,
										TimeDays:    30,
										Children: []*Node{
											{
												Action:      "last-minute settlement",
												Probability: lastMinuteSettleRate,
												Cost:        5_000,
												TimeDays:    60,
												Value:       value(d.Recommended),
											},
											{
												Action:      "trial",
												Probability: proceedToTrialRate,
												Cost:        25_000,
												TimeDays:    120,
												Children: []*Node{
													{
														Action:      "trial win",
														Probability: trialWinRate,
														Cost:        0,
														TimeDays:    0,
														Value:       value(d.Aggressive),
													},
													{
														Action:      "trial loss",
														Probability: 1 - trialWinRate,
														Cost:        0,
														TimeDays:    0,
														Value:       value(0),
													},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func value(v float64) *float64 {
	return &v
}
