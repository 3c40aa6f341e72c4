// Static database schema documentation embedded in the system prompt.
package main

// schemaContext describes the goteth_mainnet ClickHouse schema the assistant
// queries through the MCP tools.
const schemaContext = `ETHEREUM BLOCKCHAIN DATABASE SCHEMA (goteth_mainnet)

You are analyzing Ethereum Proof-of-Stake consensus layer data. Key tables:

1. t_validator_last_status (1.98M rows) - Current validator status
   - f_val_idx: Validator index (unique identifier)
   - f_epoch: Current epoch number
   - f_balance_eth: Validator balance in ETH
   - f_effective_balance: Effective balance for consensus (in wei)
   - f_status: Status code (1=active, 0=inactive)
   - f_slashed: Boolean indicating if validator was slashed

2. t_block_metrics (11.96M rows) - Block production data
   - f_slot: Slot number (12-second intervals)
   - f_epoch: Epoch number (32 slots = 1 epoch)
   - f_proposer_index: Validator who proposed the block
   - f_proposed: Boolean indicating if block was actually proposed
   - f_attestations: Number of attestations in block

3. t_pool_summary (65.6M rows) - Staking pool performance
   - f_pool_name: Name of staking pool
   - f_epoch: Epoch number
   - aggregated_rewards: Total rewards for pool in epoch
   - aggregated_effective_balance: Total effective balance

4. t_epoch_metrics_summary (375K rows) - Network-wide metrics
   - f_epoch: Epoch number
   - f_num_vals: Number of active validators
   - f_total_balance_eth: Total ETH staked
   - f_num_att: Number of attestations

5. t_block_rewards (7.6M rows) - Economic data
   - f_slot: Slot number
   - f_reward_fees: Transaction fees earned
   - f_burnt_fees: EIP-1559 burnt fees
   - f_cl_manual_reward: Consensus layer rewards

QUERY GUIDELINES:
- Always use LIMIT clauses (max 100 rows for display)
- Use aggregate functions (COUNT, SUM, AVG) for large datasets
- Field names are prefixed with f_ (e.g., f_val_idx, f_epoch)
- Epochs are ~6.4 minutes, slots are 12 seconds
- Current epoch is around 375000+
- Balance fields may be in wei (divide by 1e18 for ETH) or ETH`
