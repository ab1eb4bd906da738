package icurve

// See SPEC_FULL.md and DESIGN.md for the component breakdown and the
// grounding ledger.
